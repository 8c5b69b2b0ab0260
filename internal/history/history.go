// Package history records patch runs in a local SQLite database so an
// operator can see what was rewritten, when, and where the backup went.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/space-cowboy/logmend/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite run-history database.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the history database and initializes the schema.
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createRunsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create runs schema: %w", err)
	}

	if _, err := conn.Exec(createRuleHitsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create rule_hits schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordRun stores a run and its per-rule hits in one transaction and
// returns the new run ID. Rules with zero hits are not stored.
func (db *DB) RecordRun(run models.Run, reports []models.RuleReport) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(insertRun,
		run.FilePath,
		run.Ruleset,
		run.Replacements,
		run.EmojiRemoved,
		run.BackupPath,
		boolToInt(run.DryRun),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(insertRuleHit)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range reports {
		if r.Hits == 0 {
			continue
		}
		if _, err := stmt.Exec(runID, r.Name, r.Level, r.Hits); err != nil {
			return 0, fmt.Errorf("failed to insert rule hit %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]models.Run, error) {
	rows, err := db.conn.Query(selectRecentRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var r models.Run
		var dryRun int
		var createdAt string
		if err := rows.Scan(&r.ID, &r.FilePath, &r.Ruleset, &r.Replacements, &r.EmojiRemoved, &r.BackupPath, &dryRun, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.DryRun = dryRun != 0
		r.CreatedAt, _ = parseTimestamp(createdAt)
		runs = append(runs, r)
	}
	return runs, nil
}

// RunHits returns the per-rule hits recorded for a run.
func (db *DB) RunHits(runID int64) ([]models.RuleReport, error) {
	rows, err := db.conn.Query(selectRunHits, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule hits: %w", err)
	}
	defer rows.Close()

	var hits []models.RuleReport
	for rows.Next() {
		var h models.RuleReport
		if err := rows.Scan(&h.Name, &h.Level, &h.Hits); err != nil {
			return nil, fmt.Errorf("failed to scan rule hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTimestamp parses SQLite timestamp formats
func parseTimestamp(ts string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, ts); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", ts)
}
