// Package session owns the mutable state of one conversation: the turn
// log, the accumulating profile, the questionnaire cursor and the sampling
// knobs. Only the dialogue controller mutates a Context, on its single
// event loop.
package session

import (
	"github.com/lealimarco/the-psychologist-dog/internal/profile"
)

// #region roles

// Role identifies who produced a turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the append-only turn log.
type Turn struct {
	Role Role
	Text string
}

// #endregion roles

// #region async-kind

// AsyncKind names the single outstanding asynchronous operation, if any.
type AsyncKind string

const (
	AsyncNone        AsyncKind = "none"
	AsyncSpeaking    AsyncKind = "synthesizing-speech"
	AsyncRecognizing AsyncKind = "awaiting-recognition"
	AsyncInferring   AsyncKind = "awaiting-inference"
)

// #endregion async-kind

// #region context

// Sampling temperature bounds. Silence escalation pins the value to
// TemperatureMax; the model contract allows up to TemperatureCeiling.
const (
	TemperatureDefault = 0.7
	TemperatureMax     = 1.0
	TemperatureCeiling = 1.2
)

// Context is the per-conversation state unit.
type Context struct {
	TurnLog             []Turn
	Profile             profile.Profile
	TurnIndex           int
	NoInputStreak       int
	SamplingTemperature float64
	LastSpokenText      string
	PendingAsyncKind    AsyncKind
}

// New returns a fresh context seeded with the system prompt.
func New(systemPrompt string) *Context {
	c := &Context{
		SamplingTemperature: TemperatureDefault,
		PendingAsyncKind:    AsyncNone,
	}
	c.TurnLog = append(c.TurnLog, Turn{Role: RoleSystem, Text: systemPrompt})
	return c
}

// Append adds a turn to the log. The log is append-only; callers never
// reorder or truncate it outside Reset.
func (c *Context) Append(role Role, text string) {
	c.TurnLog = append(c.TurnLog, Turn{Role: role, Text: text})
}

// AppendUser adds a user turn, coalescing an immediate duplicate of the
// previous user turn (repeated recognition of the same utterance).
func (c *Context) AppendUser(text string) {
	if n := len(c.TurnLog); n > 0 {
		last := c.TurnLog[n-1]
		if last.Role == RoleUser && last.Text == text {
			return
		}
	}
	c.Append(RoleUser, text)
}

// LastUserText returns the content of the most recent user turn.
func (c *Context) LastUserText() string {
	for i := len(c.TurnLog) - 1; i >= 0; i-- {
		if c.TurnLog[i].Role == RoleUser {
			return c.TurnLog[i].Text
		}
	}
	return ""
}

// EscalateTemperature pins sampling to the silence maximum.
func (c *Context) EscalateTemperature() {
	c.SamplingTemperature = TemperatureMax
}

// Reset restores the context to its initial shape, replacing the system
// prompt. Restart confirmation is the only caller.
func (c *Context) Reset(systemPrompt string) {
	c.TurnLog = c.TurnLog[:0]
	c.TurnLog = append(c.TurnLog, Turn{Role: RoleSystem, Text: systemPrompt})
	c.Profile.Reset()
	c.TurnIndex = 0
	c.NoInputStreak = 0
	c.SamplingTemperature = TemperatureDefault
	c.LastSpokenText = ""
	c.PendingAsyncKind = AsyncNone
}

// #endregion context
