package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All
// repository tests load it via GetSchemaSQL() instead of hardcoding
// CREATE TABLE statements, so a repository referencing a column that
// does not exist here fails immediately with "no such column".
//
// Timestamps are RFC3339 TEXT written by the application; dates are
// YYYY-MM-DD TEXT compared as strings. The score is not stored
// anywhere in this schema: it is derived on every read.
const SchemaSQL = `
-- Daily task instances
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('MANDATORY', 'OPTIONAL')),
	date TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('PENDING', 'COMPLETED')) DEFAULT 'PENDING',
	stars_earned INTEGER NOT NULL DEFAULT 0,
	max_stars INTEGER NOT NULL DEFAULT 3,
	is_common INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

-- Reusable task-title templates, decoupled from task instances
CREATE TABLE IF NOT EXISTS common_tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL
);

-- Standing daily goals
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon_key TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

-- Per-(habit, date) completion log; absence of a row means not completed
CREATE TABLE IF NOT EXISTS habit_logs (
	id TEXT PRIMARY KEY,
	habit_id TEXT NOT NULL,
	date TEXT NOT NULL,
	completed INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE(habit_id, date)
);

-- Append-only reward ledger
CREATE TABLE IF NOT EXISTS redemptions (
	id TEXT PRIMARY KEY,
	reason TEXT NOT NULL,
	points INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_habit_logs_date ON habit_logs(date);
CREATE INDEX IF NOT EXISTS idx_habit_logs_habit ON habit_logs(habit_id);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to
// prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
