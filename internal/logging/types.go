package logging

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table: one intent
// classification and the state transition it produced.
type DecisionEntry struct {
	SessionID   string
	Utterance   string
	Intent      string
	StateBefore string
	StateAfter  string
	AnswerCount int
	Archetype   string
	CreatedAt   time.Time
}

// #endregion decision-entry
