package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/space-cowboy/logmend/internal/history"
	"github.com/space-cowboy/logmend/internal/models"
	"github.com/space-cowboy/logmend/internal/patch"
	"github.com/space-cowboy/logmend/internal/rewrite"
	"github.com/space-cowboy/logmend/internal/ui"
)

const defaultDBPath = "logmend.db"

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	// Parse command line flags
	fileFlag := flag.String("file", "", "Go source file to rewrite (falls back to LOGMEND_TARGET)")
	rulesFlag := flag.String("rules", "all", "Ruleset to apply: core, combat, or all")
	noBackup := flag.Bool("no-backup", false, "Skip writing the .bak file before overwriting the target")
	dryRun := flag.Bool("dry-run", false, "Report what would change without writing anything")
	review := flag.Bool("review", false, "Review matched rules interactively before applying")
	yes := flag.Bool("yes", false, "Apply without the confirmation prompt")
	keepEmoji := flag.Bool("keep-emoji", false, "Leave emoji prefixes in log messages")
	dbFlag := flag.String("db", "", "Path to the run-history database (falls back to LOGMEND_DB)")
	showHistory := flag.Bool("history", false, "List recent runs and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	// Determine history database path
	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("LOGMEND_DB")
	}
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	// Handle --history flag
	if *showHistory {
		store, err := history.New(dbPath)
		if err != nil {
			ui.PrintError(fmt.Sprintf("Failed to open run history: %v", err))
			os.Exit(1)
		}
		defer store.Close()

		runs, err := store.RecentRuns(20)
		if err != nil {
			ui.PrintError(fmt.Sprintf("Failed to read run history: %v", err))
			os.Exit(1)
		}
		ui.PrintHistory(runs)
		return
	}

	rules, err := rulesetByName(*rulesFlag)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	// Resolve target: flag, positional argument, env, then prompt
	target := *fileFlag
	if target == "" && flag.NArg() > 0 {
		target = flag.Arg(0)
	}
	if target == "" {
		target = os.Getenv("LOGMEND_TARGET")
	}
	if target == "" {
		target, err = ui.PromptForTarget()
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
	}

	ui.Banner()

	// Scan the file under a spinner; the rewrite itself is in-memory
	var preview *patch.Preview
	var scanErr error
	err = spinner.New().
		Title(fmt.Sprintf("Scanning %s", target)).
		Action(func() {
			preview, scanErr = patch.Scan(target, rules, !*keepEmoji)
		}).
		Run()
	if err != nil {
		ui.PrintError(fmt.Sprintf("Scan failed: %v", err))
		os.Exit(1)
	}
	if scanErr != nil {
		ui.PrintError(scanErr.Error())
		os.Exit(1)
	}

	logger.Debug("scan complete",
		"file", target,
		"ruleset", *rulesFlag,
		"replacements", preview.Replacements(),
		"emojiRemoved", preview.EmojiRemoved)

	if !preview.Changed() {
		ui.PrintSuccess(fmt.Sprintf("Nothing to rewrite: no rule matched %s", target))
		return
	}

	if *dryRun {
		ui.PrintPreview(target, preview.Reports, preview.EmojiRemoved)
		ui.PrintSuccess(fmt.Sprintf("Dry run: %d log call(s) would be rewritten", preview.Replacements()))
		recordRun(logger, dbPath, *rulesFlag, preview, nil, true)
		return
	}

	// Decide whether to apply: --yes, the review TUI, or a confirm prompt
	apply := *yes
	if !apply {
		if *review {
			result, err := ui.RunReview(target, preview.Reports, preview.EmojiRemoved)
			if err != nil {
				ui.PrintError(fmt.Sprintf("Review failed: %v", err))
				os.Exit(1)
			}
			apply = result.Apply
		} else {
			apply, err = ui.ConfirmApply(target, preview.Replacements(), preview.EmojiRemoved)
			if err != nil {
				ui.PrintError(fmt.Sprintf("Prompt failed: %v", err))
				os.Exit(1)
			}
		}
	}
	if !apply {
		fmt.Println("Aborted, target left untouched.")
		return
	}

	result, err := patch.Apply(preview, !*noBackup)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	recordRun(logger, dbPath, *rulesFlag, preview, result, false)

	if result.BackupPath != "" {
		ui.PrintSuccess(fmt.Sprintf("Backup written to %s", result.BackupPath))
	}
	ui.PrintSuccess(fmt.Sprintf("Rewrote %d log call(s) in %s, removed %d emoji prefix(es)",
		result.Replacements, target, result.EmojiRemoved))
}

// rulesetByName maps the -rules flag to a ruleset
func rulesetByName(name string) ([]rewrite.Rule, error) {
	switch name {
	case "core":
		return rewrite.CoreRules(), nil
	case "combat":
		return rewrite.CombatRules(), nil
	case "all":
		return rewrite.AllRules(), nil
	default:
		return nil, fmt.Errorf("unknown ruleset %q: use core, combat, or all", name)
	}
}

// recordRun stores the run in the history database. History is an audit
// convenience: failure to record must not undo or abort an applied patch,
// so problems are logged as warnings and otherwise ignored.
func recordRun(logger *log.Logger, dbPath, ruleset string, preview *patch.Preview, result *patch.Result, dryRun bool) {
	store, err := history.New(dbPath)
	if err != nil {
		logger.Warn("run history unavailable", "db", dbPath, "error", err)
		return
	}
	defer store.Close()

	run := models.Run{
		FilePath:     preview.Path,
		Ruleset:      ruleset,
		Replacements: preview.Replacements(),
		EmojiRemoved: preview.EmojiRemoved,
		DryRun:       dryRun,
	}
	if result != nil {
		run.BackupPath = result.BackupPath
	}

	if _, err := store.RecordRun(run, preview.Reports); err != nil {
		logger.Warn("failed to record run", "db", dbPath, "error", err)
	}
}
