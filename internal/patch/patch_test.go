package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/space-cowboy/logmend/internal/rewrite"
)

const sampleSource = `package game

func (g *GameManager) tick() {
	log.Printf("Error loading config: %v", err)
	log.Printf("DESTRUCTION: %s", msg)
	log.Println("🛑 Server starting")
	log.Printf("Error %s: %v", "ctx", computeErr())
}
`

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manager.go")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestScanAndApply(t *testing.T) {
	path := writeTarget(t, sampleSource)

	preview, err := Scan(path, rewrite.AllRules(), true)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if !preview.Changed() {
		t.Fatal("Changed() = false, want true")
	}
	if got := preview.Replacements(); got != 2 {
		t.Errorf("Replacements() = %d, want 2", got)
	}
	if preview.EmojiRemoved != 1 {
		t.Errorf("EmojiRemoved = %d, want 1", preview.EmojiRemoved)
	}
	if len(preview.Reports) != 13 {
		t.Errorf("len(Reports) = %d, want 13", len(preview.Reports))
	}

	// Scanning must not touch the file
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading target after scan: %v", err)
	}
	if string(data) != sampleSource {
		t.Error("Scan() modified the target file")
	}

	result, err := Apply(preview, true)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.Replacements != 2 {
		t.Errorf("result.Replacements = %d, want 2", result.Replacements)
	}
	if result.BackupPath != path+".bak" {
		t.Errorf("BackupPath = %q, want %q", result.BackupPath, path+".bak")
	}

	// Backup must hold the original bytes
	backup, err := os.ReadFile(result.BackupPath)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(backup) != sampleSource {
		t.Error("backup is not byte-identical to the original")
	}

	// Target must hold the rewritten content
	rewritten, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	got := string(rewritten)
	if !strings.Contains(got, `log.Error("Error loading config", "error", err)`) {
		t.Errorf("error call not rewritten:\n%s", got)
	}
	if !strings.Contains(got, `log.Info("Tank destroyed", "message", msg)`) {
		t.Errorf("destruction call not rewritten:\n%s", got)
	}
	if !strings.Contains(got, `log.Println("Server starting")`) {
		t.Errorf("emoji prefix not stripped:\n%s", got)
	}
	// The complex-argument call must survive untouched
	if !strings.Contains(got, `log.Printf("Error %s: %v", "ctx", computeErr())`) {
		t.Errorf("complex-argument call was modified:\n%s", got)
	}
}

func TestApplyWithoutBackup(t *testing.T) {
	path := writeTarget(t, sampleSource)

	preview, err := Scan(path, rewrite.CoreRules(), false)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	result, err := Apply(preview, false)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.BackupPath != "" {
		t.Errorf("BackupPath = %q, want empty", result.BackupPath)
	}
	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Errorf("backup file exists, want none (stat err = %v)", err)
	}
}

func TestApplyPreservesMode(t *testing.T) {
	path := writeTarget(t, sampleSource)
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	preview, err := Scan(path, rewrite.AllRules(), true)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if _, err := Apply(preview, true); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("target mode = %v, want 0600", info.Mode().Perm())
	}

	backupInfo, err := os.Stat(path + ".bak")
	if err != nil {
		t.Fatalf("stat backup: %v", err)
	}
	if backupInfo.Mode().Perm() != 0600 {
		t.Errorf("backup mode = %v, want 0600", backupInfo.Mode().Perm())
	}
}

func TestScanMissingFile(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing.go"), rewrite.AllRules(), true)
	if err == nil {
		t.Fatal("Scan() error = nil, want error for missing file")
	}
}

func TestNoMatchRoundTrip(t *testing.T) {
	content := "package game\n\nvar x = 1\n"
	path := writeTarget(t, content)

	preview, err := Scan(path, rewrite.AllRules(), true)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if preview.Changed() {
		t.Error("Changed() = true, want false")
	}
	if got := preview.Replacements(); got != 0 {
		t.Errorf("Replacements() = %d, want 0", got)
	}

	// Applying an unchanged preview rewrites identical bytes
	if _, err := Apply(preview, false); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if string(data) != content {
		t.Error("no-op apply changed the file")
	}
}

// TestScanDeterministic verifies repeated scans yield identical rewrites
func TestScanDeterministic(t *testing.T) {
	path := writeTarget(t, sampleSource)

	first, err := Scan(path, rewrite.AllRules(), true)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	second, err := Scan(path, rewrite.AllRules(), true)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if first.Rewritten != second.Rewritten {
		t.Error("Scan() is not deterministic")
	}
}
