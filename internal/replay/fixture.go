// Package replay runs scripted conversations through the dialogue
// machine deterministically: speech completes instantly, analysis uses
// the real scorer, and inference replies come from the fixture itself.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Step kinds accepted in a fixture script.
const (
	StepUtterance       = "utterance"
	StepNoInput         = "no-input"
	StepInferenceReply  = "inference-reply"
	StepInferenceFailed = "inference-failed"
)

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Steps       []Step        `json:"steps"`
	Expected    []Expectation `json:"expected"`
}

// Step is one scripted input to the conversation.
type Step struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// Expectation pins the conversation's shape after a given step. Step
// indexes are zero-based into Fixture.Steps.
type Expectation struct {
	Step          int    `json:"step"`
	State         string `json:"state"`
	ReplyContains string `json:"reply_contains,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// Validate checks step kinds and expectation indexes.
func (f *Fixture) Validate() error {
	for i, s := range f.Steps {
		switch s.Kind {
		case StepUtterance, StepNoInput, StepInferenceReply, StepInferenceFailed:
		default:
			return fmt.Errorf("step %d: unknown kind %q", i, s.Kind)
		}
		if s.Kind == StepUtterance && s.Text == "" {
			return fmt.Errorf("step %d: utterance without text", i)
		}
	}
	for i, e := range f.Expected {
		if e.Step < 0 || e.Step >= len(f.Steps) {
			return fmt.Errorf("expectation %d: step %d out of range", i, e.Step)
		}
		if e.State == "" && e.ReplyContains == "" {
			return fmt.Errorf("expectation %d: nothing to check", i)
		}
	}
	return nil
}

// #endregion fixture-loader
