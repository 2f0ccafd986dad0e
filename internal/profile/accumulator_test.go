package profile

import (
	"testing"

	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   bool
	}{
		{"substantive answer", "I enjoy long walks", true},
		{"short but real", "art", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "ok", false},
		{"filler idk", "idk", false},
		{"filler embedded", "hmm i don't know really", false},
		{"clarification request", "what did you say", false},
		{"apology", "sorry, come again", false},
		{"hedge", "maybe something outdoors", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.answer); got != tc.want {
				t.Errorf("IsValid(%q): got %v, want %v", tc.answer, got, tc.want)
			}
		})
	}
}

func TestRecordFiltersAndCounts(t *testing.T) {
	var p Profile
	if p.Record("Q1", "idk") {
		t.Error("filler: got accepted, want rejected")
	}
	if !p.Record("Q1", "I enjoy long walks") {
		t.Error("substantive: got rejected, want accepted")
	}
	if !p.Record("Q2", "painting mostly") {
		t.Error("second answer: got rejected, want accepted")
	}
	if got := p.ValidAnswerCount(); got != 2 {
		t.Errorf("count: got %d, want 2", got)
	}
	if got := p.CorpusText(); got != "I enjoy long walks painting mostly" {
		t.Errorf("corpus: got %q", got)
	}
}

func TestRecordCoalescesConsecutiveDuplicates(t *testing.T) {
	var p Profile
	p.Record("Q1", "I enjoy long walks")
	if p.Record("Q1", "I enjoy long walks") {
		t.Error("duplicate: got accepted, want coalesced")
	}
	if got := p.ValidAnswerCount(); got != 1 {
		t.Errorf("count: got %d, want 1", got)
	}
	// Same text for a different question is a genuine new answer.
	if !p.Record("Q2", "I enjoy long walks") {
		t.Error("same text new question: got rejected, want accepted")
	}
}

func TestApplyAnalysisAndReset(t *testing.T) {
	var p Profile
	p.Record("Q1", "I paint and write poems")
	p.ApplyAnalysis(archetype.Score(p.CorpusText()))
	if p.Archetype != "The Creator" {
		t.Errorf("archetype: got %q, want %q", p.Archetype, "The Creator")
	}
	if p.MBTIType != "INFP" {
		t.Errorf("mbti: got %q, want INFP", p.MBTIType)
	}
	if !p.ArchetypeKnown() {
		t.Error("ArchetypeKnown: got false, want true")
	}
	p.Reset()
	if p.ValidAnswerCount() != 0 || p.ArchetypeKnown() {
		t.Errorf("after reset: count %d, archetype %q", p.ValidAnswerCount(), p.Archetype)
	}
}
