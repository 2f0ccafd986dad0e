package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// #region questionnaire

func TestReplayQuestionnaireToReveal(t *testing.T) {
	f := &Fixture{
		Description: "three answers trigger the automatic analysis",
		Steps: []Step{
			{Kind: StepUtterance, Text: "quiet evenings mostly"},
			{Kind: StepInferenceReply, Text: "Noted."},
			{Kind: StepUtterance, Text: "long mountain walks"},
			{Kind: StepInferenceReply, Text: "Noted."},
			{Kind: StepUtterance, Text: "cooking for friends"},
			{Kind: StepInferenceReply, Text: "Noted."},
		},
	}

	results, summary, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("results: got %d, want 6", len(results))
	}

	if results[0].State != "running-inference" || !results[0].AwaitingInference {
		t.Errorf("step 0: %+v", results[0])
	}
	if results[1].State != "listening" {
		t.Errorf("step 1: state %q", results[1].State)
	}
	if !strings.Contains(results[1].LastReply, session.Questions[0]) {
		t.Errorf("step 1: reply %q missing first question", results[1].LastReply)
	}

	final := results[5]
	if final.State != "listening-post-analysis" {
		t.Errorf("final state: %q", final.State)
	}
	if !strings.Contains(final.LastReply, "3 questions") {
		t.Errorf("final reply: %q", final.LastReply)
	}

	if summary.Utterances != 3 || summary.AnswerCount != 3 {
		t.Errorf("summary: %+v", summary)
	}
	if summary.Archetype == "" {
		t.Error("summary missing archetype")
	}
}

// #endregion questionnaire

// #region disclosure-and-quit

func TestReplayDisclosureThenQuit(t *testing.T) {
	f := &Fixture{
		Steps: []Step{
			{Kind: StepUtterance, Text: "i love painting and writing poems"},
			{Kind: StepUtterance, Text: "bye"},
			{Kind: StepInferenceFailed},
			{Kind: StepUtterance, Text: "yes"},
		},
		Expected: []Expectation{
			{Step: 0, State: "listening-post-analysis", ReplyContains: "The Creator"},
			{Step: 1, State: "confirming-quit"},
			{Step: 2, State: "confirming-quit", ReplyContains: "quit"},
			{Step: 3, State: "idle"},
		},
	}

	results, _, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if mismatches := Check(f, results); len(mismatches) != 0 {
		t.Errorf("mismatches: %v", mismatches)
	}
}

// #endregion disclosure-and-quit

// #region silence

func TestReplaySilenceEscalates(t *testing.T) {
	f := &Fixture{
		Steps: []Step{
			{Kind: StepNoInput},
			{Kind: StepInferenceReply, Text: "Are you still there?"},
			{Kind: StepNoInput},
		},
	}

	_, _, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	h := NewHarness()
	for _, step := range f.Steps {
		if err := h.Apply(step); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if got := h.Machine().Context().SamplingTemperature; got != session.TemperatureMax {
		t.Errorf("temperature: got %v, want %v", got, session.TemperatureMax)
	}
}

// #endregion silence

// #region sequencing

func TestReplayRejectsMisSequencedSteps(t *testing.T) {
	f := &Fixture{Steps: []Step{{Kind: StepInferenceReply, Text: "hello"}}}
	if _, _, err := Replay(f); err == nil {
		t.Fatal("expected error for reply with no completion pending")
	}

	f = &Fixture{Steps: []Step{
		{Kind: StepUtterance, Text: "quiet evenings mostly"},
		{Kind: StepUtterance, Text: "another answer"},
	}}
	if _, _, err := Replay(f); err == nil {
		t.Fatal("expected error for utterance while completion pending")
	}
}

// #endregion sequencing

// #region check

func TestCheckReportsMismatches(t *testing.T) {
	f := &Fixture{
		Steps: []Step{{Kind: StepUtterance, Text: "quiet evenings mostly"}},
		Expected: []Expectation{
			{Step: 0, State: "idle"},
			{Step: 4, State: "listening"},
		},
	}
	results, _, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	mismatches := Check(f, results)
	if len(mismatches) != 2 {
		t.Fatalf("mismatches: got %d, want 2: %v", len(mismatches), mismatches)
	}
}

// #endregion check

// #region fixture-io

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversation.json")
	body := `{
		"description": "one answer",
		"steps": [
			{"kind": "utterance", "text": "quiet evenings mostly"},
			{"kind": "inference-reply", "text": "Noted."}
		],
		"expected": [
			{"step": 1, "state": "listening"}
		]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(f.Steps) != 2 || f.Steps[0].Text != "quiet evenings mostly" {
		t.Errorf("fixture: %+v", f)
	}

	results, _, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if mismatches := Check(f, results); len(mismatches) != 0 {
		t.Errorf("mismatches: %v", mismatches)
	}
}

func TestLoadFixtureRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	body := `{"steps": [{"kind": "teleport"}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected validation error")
	}
}

// #endregion fixture-io
