// Package profile accumulates questionnaire answers and the personality
// analysis derived from them. Only substantive answers count toward the
// analysis threshold; filler turns stay in the turn log but never here.
package profile

import (
	"strings"

	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
)

// #region types

// Answer pairs one questionnaire item with the user's accepted reply.
type Answer struct {
	Question string
	Text     string
}

// Profile is the per-session accumulation target.
type Profile struct {
	Answers    []Answer
	Archetype  string
	MBTIType   string
	Confidence archetype.Confidence
	Traits     []string
}

// ValidAnswerCount reports how many substantive answers were accepted.
func (p *Profile) ValidAnswerCount() int {
	return len(p.Answers)
}

// ArchetypeKnown reports whether an analysis has been applied.
func (p *Profile) ArchetypeKnown() bool {
	return p.Archetype != ""
}

// CorpusText joins all accepted answers into one scoring blob.
func (p *Profile) CorpusText() string {
	parts := make([]string, len(p.Answers))
	for i, a := range p.Answers {
		parts[i] = a.Text
	}
	return strings.Join(parts, " ")
}

// Reset drops all accumulated state.
func (p *Profile) Reset() {
	*p = Profile{}
}

// #endregion types

// #region validity

// Filler markers that disqualify an answer, matched as lowercase substrings.
var fillerMarkers = []string{
	"i don't know", "idk", "not sure", "maybe", "perhaps",
	"repeat", "again", "what", "huh", "sorry", "pardon",
}

// IsValid reports whether an answer is substantive: trimmed length of at
// least three and free of filler markers.
func IsValid(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < 3 {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, m := range fillerMarkers {
		if strings.Contains(lower, m) {
			return false
		}
	}
	return true
}

// #endregion validity

// #region record

// Record appends a validated answer. Invalid answers are dropped and an
// identical answer immediately repeated for the same question is coalesced
// rather than double-counted. Returns whether the answer was accepted.
func (p *Profile) Record(question, answer string) bool {
	if !IsValid(answer) {
		return false
	}
	if n := len(p.Answers); n > 0 {
		last := p.Answers[n-1]
		if last.Question == question && last.Text == answer {
			return false
		}
	}
	p.Answers = append(p.Answers, Answer{Question: question, Text: answer})
	return true
}

// ApplyAnalysis stores a scorer result on the profile.
func (p *Profile) ApplyAnalysis(r archetype.Result) {
	p.Archetype = r.Archetype
	p.MBTIType = archetype.MBTI(r.Archetype)
	p.Confidence = r.Confidence
	p.Traits = append([]string(nil), r.Traits...)
}

// #endregion record
