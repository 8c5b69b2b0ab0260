package history

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_path TEXT NOT NULL,
    ruleset TEXT NOT NULL,
    replacements INTEGER NOT NULL,
    emoji_removed INTEGER NOT NULL,
    backup_path TEXT,
    dry_run INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file_path);
`

const createRuleHitsTable = `
CREATE TABLE IF NOT EXISTS rule_hits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    rule_name TEXT NOT NULL,
    level TEXT NOT NULL,
    hits INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id)
);

CREATE INDEX IF NOT EXISTS idx_rule_hits_run ON rule_hits(run_id);
`

const insertRun = `
INSERT INTO runs (file_path, ruleset, replacements, emoji_removed, backup_path, dry_run)
VALUES (?, ?, ?, ?, ?, ?)
`

const insertRuleHit = `
INSERT INTO rule_hits (run_id, rule_name, level, hits)
VALUES (?, ?, ?, ?)
`

const selectRecentRuns = `
SELECT id, file_path, ruleset, replacements, emoji_removed, COALESCE(backup_path, ''), dry_run, created_at
FROM runs
ORDER BY id DESC
LIMIT ?
`

const selectRunHits = `
SELECT rule_name, level, hits FROM rule_hits
WHERE run_id = ?
ORDER BY id ASC
`
