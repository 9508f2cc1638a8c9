package state

import (
	"database/sql"
	"errors"
)

// ViewerState is the session state restored when reopening a script.
// Preference overrides are nullable: nil means "use the config value".
type ViewerState struct {
	ScriptPath       string
	Follow           bool
	LookaheadSeconds *int
	Highlighting     *bool
	AutoSortCues     *bool
	ShowClockTimes   *bool
	UseMilitaryTime  *bool
}

func getViewer(db *sql.DB) (*ViewerState, error) {
	row := db.QueryRow(`
		SELECT script_path, follow, lookahead_seconds, highlighting,
		       auto_sort_cues, show_clock_times, use_military_time
		FROM viewer_state WHERE id = 1
	`)

	var state ViewerState
	var follow int64
	var lookahead sql.NullInt64
	var highlighting, autoSort, clockTimes, military sql.NullBool

	err := row.Scan(&state.ScriptPath, &follow, &lookahead,
		&highlighting, &autoSort, &clockTimes, &military)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.Follow = follow != 0
	if lookahead.Valid {
		v := int(lookahead.Int64)
		state.LookaheadSeconds = &v
	}
	state.Highlighting = nullBoolPtr(highlighting)
	state.AutoSortCues = nullBoolPtr(autoSort)
	state.ShowClockTimes = nullBoolPtr(clockTimes)
	state.UseMilitaryTime = nullBoolPtr(military)

	return &state, nil
}

func saveViewer(db *sql.DB, state ViewerState) error {
	_, err := db.Exec(`
		INSERT INTO viewer_state (
			id, script_path, follow, lookahead_seconds, highlighting,
			auto_sort_cues, show_clock_times, use_military_time
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			script_path = excluded.script_path,
			follow = excluded.follow,
			lookahead_seconds = excluded.lookahead_seconds,
			highlighting = excluded.highlighting,
			auto_sort_cues = excluded.auto_sort_cues,
			show_clock_times = excluded.show_clock_times,
			use_military_time = excluded.use_military_time
	`, state.ScriptPath, boolInt(state.Follow), intPtrValue(state.LookaheadSeconds),
		boolPtrValue(state.Highlighting), boolPtrValue(state.AutoSortCues),
		boolPtrValue(state.ShowClockTimes), boolPtrValue(state.UseMilitaryTime))
	return err
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func nullBoolPtr(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	v := nb.Bool
	return &v
}

func boolPtrValue(b *bool) any {
	if b == nil {
		return nil
	}
	return boolInt(*b)
}

func intPtrValue(i *int) any {
	if i == nil {
		return nil
	}
	return int64(*i)
}
