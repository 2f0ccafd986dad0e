package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
// EnsureSchema creates the decision_log table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS decision_log (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id   TEXT NOT NULL,
		utterance    TEXT NOT NULL,
		intent       TEXT NOT NULL,
		state_before TEXT NOT NULL,
		state_after  TEXT NOT NULL,
		answer_count INTEGER NOT NULL,
		archetype    TEXT,
		created_at   TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("ensure decision_log: %w", err)
	}
	return nil
}

// #endregion schema

// #region log-decision
// LogDecision writes one classification outcome to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (session_id, utterance, intent, state_before, state_after, answer_count, archetype, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Utterance,
		entry.Intent,
		entry.StateBefore,
		entry.StateAfter,
		entry.AnswerCount,
		nullIfEmpty(entry.Archetype),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region list-decisions
// ListDecisions returns a session's decisions in arrival order.
func ListDecisions(db *sql.DB, sessionID string) ([]DecisionEntry, error) {
	rows, err := db.Query(
		`SELECT session_id, utterance, intent, state_before, state_after, answer_count, archetype, created_at
		 FROM decision_log WHERE session_id = ? ORDER BY id ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var archetype sql.NullString
		var createdStr string
		if err := rows.Scan(&e.SessionID, &e.Utterance, &e.Intent, &e.StateBefore, &e.StateAfter, &e.AnswerCount, &archetype, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Archetype = archetype.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-decisions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
