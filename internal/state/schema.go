package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS viewer_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			script_path TEXT NOT NULL,
			follow INTEGER NOT NULL DEFAULT 1,
			lookahead_seconds INTEGER,
			highlighting INTEGER,
			auto_sort_cues INTEGER,
			show_clock_times INTEGER,
			use_military_time INTEGER
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add the clock display columns if missing
	_, _ = db.Exec(`ALTER TABLE viewer_state ADD COLUMN show_clock_times INTEGER`)
	_, _ = db.Exec(`ALTER TABLE viewer_state ADD COLUMN use_military_time INTEGER`)

	return nil
}
