package models

import "time"

// RuleReport describes what a single rule would do (or did) to a file.
// Before/After hold the first matched call and its rewritten form, for
// preview display; both are empty when Hits is zero.
type RuleReport struct {
	Name   string
	Level  string
	Hits   int
	Before string
	After  string
}

// Run is the flattened record of one patch run for database storage.
type Run struct {
	ID           int64
	FilePath     string
	Ruleset      string
	Replacements int
	EmojiRemoved int
	BackupPath   string
	DryRun       bool
	CreatedAt    time.Time
}
