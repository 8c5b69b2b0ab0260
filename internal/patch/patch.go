// Package patch is the file driver: it reads a target source file,
// runs the rewrite rules over it in memory, and writes the result back,
// optionally persisting a backup of the original bytes first.
package patch

import (
	"fmt"
	"os"

	"github.com/space-cowboy/logmend/internal/models"
	"github.com/space-cowboy/logmend/internal/rewrite"
)

// Preview holds a computed rewrite before anything touches disk.
type Preview struct {
	Path         string
	Original     string
	Rewritten    string
	Mode         os.FileMode
	Reports      []models.RuleReport
	EmojiRemoved int
}

// Result summarizes an applied rewrite.
type Result struct {
	BackupPath   string
	Replacements int
	EmojiRemoved int
}

// Scan reads the whole target file and computes the rewrite without
// writing anything. Rules are applied in order against the current
// (possibly already-rewritten) content; a rule that matches nothing
// reports zero hits, which is not an error.
func Scan(path string, rules []rewrite.Rule, stripEmoji bool) (*Preview, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat target: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read target: %w", err)
	}

	content := string(data)
	p := &Preview{
		Path:     path,
		Original: content,
		Mode:     info.Mode(),
	}

	for _, rule := range rules {
		report := models.RuleReport{Name: rule.Name, Level: rule.Level}
		report.Before, report.After, _ = rule.FirstMatch(content)
		content, report.Hits = rule.Apply(content)
		p.Reports = append(p.Reports, report)
	}

	if stripEmoji {
		content, p.EmojiRemoved = rewrite.StripEmoji(content)
	}

	p.Rewritten = content
	return p, nil
}

// Changed reports whether applying the preview would modify the file.
func (p *Preview) Changed() bool {
	return p.Rewritten != p.Original
}

// Replacements returns the total number of rewritten log calls.
func (p *Preview) Replacements() int {
	total := 0
	for _, r := range p.Reports {
		total += r.Hits
	}
	return total
}

// Apply overwrites the target with the rewritten content, preserving
// the original file mode. With backup enabled the original bytes are
// written to <path>.bak before the target is touched, so an operator
// can restore by hand. There is no locking; concurrent runs against the
// same path are unsupported.
func Apply(p *Preview, backup bool) (*Result, error) {
	res := &Result{
		Replacements: p.Replacements(),
		EmojiRemoved: p.EmojiRemoved,
	}

	if backup {
		res.BackupPath = p.Path + ".bak"
		if err := os.WriteFile(res.BackupPath, []byte(p.Original), p.Mode); err != nil {
			return nil, fmt.Errorf("write backup: %w", err)
		}
	}

	if err := os.WriteFile(p.Path, []byte(p.Rewritten), p.Mode); err != nil {
		return nil, fmt.Errorf("write target: %w", err)
	}

	return res, nil
}
