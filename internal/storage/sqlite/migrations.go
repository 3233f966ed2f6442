package sqlite

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist.
// A session row holds the current screen inputs only; it is overwritten in place.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    bill_amount REAL NOT NULL,
    tip_percentage REAL NOT NULL,
    party_size INTEGER NOT NULL CHECK (party_size BETWEEN 1 AND 10),
    currency TEXT NOT NULL,
    results_visible INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
