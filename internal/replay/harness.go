package replay

import (
	"fmt"
	"strings"

	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
	"github.com/lealimarco/the-psychologist-dog/internal/dialogue"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
	"github.com/lealimarco/the-psychologist-dog/internal/synth"
)

// #region types

// StepResult captures the conversation's shape after one scripted step.
type StepResult struct {
	Step      int
	Kind      string
	State     dialogue.State
	LastReply string
	// AwaitingInference means the machine asked for a completion and the
	// script must answer with inference-reply or inference-failed next.
	AwaitingInference bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps  int
	Utterances  int
	Silences    int
	FinalState  dialogue.State
	AnswerCount int
	Archetype   string
}

// #endregion types

// #region harness

// Harness replays scripted steps through a fresh machine. Speech and
// analysis effects resolve synchronously; inference effects are answered
// by the script.
type Harness struct {
	machine  *dialogue.Machine
	awaiting bool
	reply    string
}

// NewHarness boots a machine to Listening, ready for scripted input.
func NewHarness() *Harness {
	h := &Harness{machine: dialogue.NewMachine(session.New(synth.SystemPrompt))}
	h.resolve(h.machine.Boot())
	h.feed(dialogue.Start{})
	return h
}

// Machine exposes the underlying machine for inspection.
func (h *Harness) Machine() *dialogue.Machine { return h.machine }

// feed hands one event to the machine and resolves the returned effects.
func (h *Harness) feed(ev dialogue.Event) {
	h.resolve(h.machine.Handle(ev))
}

// resolve runs every synchronous effect to quiescence. An Infer effect
// parks the harness until the script supplies the completion.
func (h *Harness) resolve(effects []dialogue.Effect) {
	for len(effects) > 0 {
		next := effects[0]
		effects = effects[1:]
		switch e := next.(type) {
		case dialogue.Prepare:
			effects = append(effects, h.machine.Handle(dialogue.SpeechReady{})...)
		case dialogue.Speak:
			h.reply = e.Text
			effects = append(effects, h.machine.Handle(dialogue.SpeechDone{})...)
		case dialogue.Listen:
			// Listening is the quiescent point; the script speaks next.
		case dialogue.Analyze:
			effects = append(effects, h.machine.Handle(dialogue.AnalysisDone{Result: archetype.Score(e.Text)})...)
		case dialogue.Infer:
			h.awaiting = true
		}
	}
}

// Apply runs one scripted step.
func (h *Harness) Apply(step Step) error {
	switch step.Kind {
	case StepUtterance:
		if h.awaiting {
			return fmt.Errorf("utterance while a completion is pending")
		}
		h.feed(dialogue.Utterance{Text: step.Text})
	case StepNoInput:
		if h.awaiting {
			return fmt.Errorf("no-input while a completion is pending")
		}
		h.feed(dialogue.NoInput{})
	case StepInferenceReply:
		if !h.awaiting {
			return fmt.Errorf("inference-reply with no completion pending")
		}
		h.awaiting = false
		h.feed(dialogue.InferenceDone{Text: step.Text})
	case StepInferenceFailed:
		if !h.awaiting {
			return fmt.Errorf("inference-failed with no completion pending")
		}
		h.awaiting = false
		h.feed(dialogue.InferenceFailed{})
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
	return nil
}

// #endregion harness

// #region replay

// Replay drives every fixture step through a fresh machine.
func Replay(f *Fixture) ([]StepResult, Summary, error) {
	h := NewHarness()
	results := make([]StepResult, 0, len(f.Steps))

	for i, step := range f.Steps {
		if err := h.Apply(step); err != nil {
			return results, summarize(results, h), fmt.Errorf("step %d: %w", i, err)
		}
		results = append(results, StepResult{
			Step:              i,
			Kind:              step.Kind,
			State:             h.machine.State(),
			LastReply:         h.reply,
			AwaitingInference: h.awaiting,
		})
	}
	return results, summarize(results, h), nil
}

// Check compares results against the fixture's expectations and returns
// one message per mismatch.
func Check(f *Fixture, results []StepResult) []string {
	var mismatches []string
	for _, e := range f.Expected {
		if e.Step >= len(results) {
			mismatches = append(mismatches, fmt.Sprintf("step %d: no result recorded", e.Step))
			continue
		}
		r := results[e.Step]
		if e.State != "" && string(r.State) != e.State {
			mismatches = append(mismatches, fmt.Sprintf("step %d: state %q, expected %q", e.Step, r.State, e.State))
		}
		if e.ReplyContains != "" && !strings.Contains(r.LastReply, e.ReplyContains) {
			mismatches = append(mismatches, fmt.Sprintf("step %d: reply %q does not contain %q", e.Step, r.LastReply, e.ReplyContains))
		}
	}
	return mismatches
}

// summarize computes aggregate stats from a replay run.
func summarize(results []StepResult, h *Harness) Summary {
	s := Summary{TotalSteps: len(results)}
	for _, r := range results {
		switch r.Kind {
		case StepUtterance:
			s.Utterances++
		case StepNoInput:
			s.Silences++
		}
	}
	if len(results) > 0 {
		s.FinalState = results[len(results)-1].State
	}
	ctx := h.Machine().Context()
	s.AnswerCount = ctx.Profile.ValidAnswerCount()
	s.Archetype = ctx.Profile.Archetype
	return s
}

// #endregion replay
