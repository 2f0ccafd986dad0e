package session

import "testing"

const testPrompt = "You are a personality analysis assistant."

func TestNewSeedsSystemPrompt(t *testing.T) {
	c := New(testPrompt)
	if len(c.TurnLog) != 1 {
		t.Fatalf("turn log: got %d entries, want 1", len(c.TurnLog))
	}
	if c.TurnLog[0].Role != RoleSystem || c.TurnLog[0].Text != testPrompt {
		t.Errorf("first turn: got %+v", c.TurnLog[0])
	}
	if c.SamplingTemperature != TemperatureDefault {
		t.Errorf("temperature: got %v, want %v", c.SamplingTemperature, TemperatureDefault)
	}
	if c.PendingAsyncKind != AsyncNone {
		t.Errorf("pending: got %q, want %q", c.PendingAsyncKind, AsyncNone)
	}
}

func TestAppendUserCoalescesDuplicates(t *testing.T) {
	c := New(testPrompt)
	c.AppendUser("i like music")
	c.AppendUser("i like music")
	if got := len(c.TurnLog); got != 2 {
		t.Fatalf("turn log: got %d entries, want 2", got)
	}
	c.Append(RoleAssistant, "noted")
	c.AppendUser("i like music")
	if got := len(c.TurnLog); got != 4 {
		t.Errorf("non-adjacent repeat: got %d entries, want 4", got)
	}
	if got := c.LastUserText(); got != "i like music" {
		t.Errorf("last user text: got %q", got)
	}
}

func TestQuestionCursor(t *testing.T) {
	c := New(testPrompt)
	q, ok := c.CurrentQuestion()
	if !ok || q != Questions[0] {
		t.Fatalf("first question: got %q/%v", q, ok)
	}
	for range Questions {
		c.AdvanceQuestion()
	}
	if _, ok := c.CurrentQuestion(); ok {
		t.Error("exhausted cursor: got ok, want exhausted")
	}
	// Cursor never walks past the end.
	c.AdvanceQuestion()
	if c.TurnIndex != len(Questions) {
		t.Errorf("cursor: got %d, want %d", c.TurnIndex, len(Questions))
	}
	if got := c.LastAskedQuestion(); got != Questions[len(Questions)-1] {
		t.Errorf("last asked: got %q", got)
	}
}

func TestResetRestoresInitialShape(t *testing.T) {
	c := New(testPrompt)
	c.AppendUser("i like music")
	c.AdvanceQuestion()
	c.NoInputStreak = 2
	c.EscalateTemperature()
	c.LastSpokenText = "noted"
	c.Profile.Record("Q1", "long walks outside")

	c.Reset(testPrompt)

	if len(c.TurnLog) != 1 || c.TurnLog[0].Role != RoleSystem {
		t.Errorf("turn log after reset: %+v", c.TurnLog)
	}
	if c.TurnIndex != 0 || c.NoInputStreak != 0 {
		t.Errorf("cursors after reset: turn %d, streak %d", c.TurnIndex, c.NoInputStreak)
	}
	if c.SamplingTemperature != TemperatureDefault {
		t.Errorf("temperature after reset: got %v", c.SamplingTemperature)
	}
	if c.Profile.ValidAnswerCount() != 0 {
		t.Errorf("profile after reset: %d answers", c.Profile.ValidAnswerCount())
	}
}

func TestEscalateTemperatureBounded(t *testing.T) {
	c := New(testPrompt)
	c.EscalateTemperature()
	c.EscalateTemperature()
	if c.SamplingTemperature != TemperatureMax {
		t.Errorf("temperature: got %v, want %v", c.SamplingTemperature, TemperatureMax)
	}
	if c.SamplingTemperature > TemperatureCeiling {
		t.Errorf("temperature above ceiling: %v", c.SamplingTemperature)
	}
}
