// Package archetype scores free-form user text against a fixed table of
// twelve Jungian archetypes and maps the winner to recommendations and an
// MBTI type. Scoring is deterministic: same text, same result.
package archetype

import "strings"

// #region types

// Confidence buckets the winning score into a coarse label.
type Confidence string

const (
	ConfidenceInitial  Confidence = "initial"
	ConfidenceLow      Confidence = "low"
	ConfidenceModerate Confidence = "moderate"
	ConfidenceHigh     Confidence = "high"
	ConfidenceVeryHigh Confidence = "very high"
)

// rank orders confidence labels for threshold comparisons.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceVeryHigh:
		return 4
	case ConfidenceHigh:
		return 3
	case ConfidenceModerate:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether c meets or exceeds min.
func (c Confidence) AtLeast(min Confidence) bool {
	return c.rank() >= min.rank()
}

// Result is the outcome of scoring one text blob.
type Result struct {
	Archetype  string
	Confidence Confidence
	Traits     []string
	Scores     map[string]int
}

// #endregion types

// #region scoring

const maxTraits = 4

// Score matches text against every keyword group of every archetype and
// returns the highest scorer. A later archetype must strictly beat the
// current best to displace it. Traits accumulate across every matched
// group in table order, not just the winner's, so a statement touching
// two archetypes reports traits from both. When nothing matches at all,
// a sentiment fallback picks a label from the verbs in the text.
func Score(text string) Result {
	lower := strings.ToLower(text)

	scores := make(map[string]int, len(rules))
	var traits []string
	for _, r := range rules {
		total := 0
		for _, g := range r.groups {
			if !matchesAny(lower, g.keywords) {
				continue
			}
			total += g.weight
			traits = append(traits, g.traits[0], g.traits[1])
		}
		scores[r.name] = total
	}

	best := rules[0].name
	for _, r := range rules[1:] {
		if scores[r.name] > scores[best] {
			best = r.name
		}
	}

	if scores[best] == 0 {
		return fallbackResult(lower, scores)
	}

	return Result{
		Archetype:  best,
		Confidence: confidenceFor(scores[best]),
		Traits:     dedupeTraits(traits),
		Scores:     scores,
	}
}

func matchesAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func confidenceFor(score int) Confidence {
	switch {
	case score >= 8:
		return ConfidenceVeryHigh
	case score >= 6:
		return ConfidenceHigh
	case score >= 4:
		return ConfidenceModerate
	case score >= 2:
		return ConfidenceLow
	default:
		return ConfidenceInitial
	}
}

// dedupeTraits keeps first occurrences, capped at maxTraits.
func dedupeTraits(traits []string) []string {
	seen := make(map[string]bool, len(traits))
	out := make([]string, 0, maxTraits)
	for _, t := range traits {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
		if len(out) == maxTraits {
			break
		}
	}
	return out
}

func fallbackResult(lower string, scores map[string]int) Result {
	switch {
	case matchesAny(lower, enthusiasmWords):
		return Result{Archetype: fallbackEnthusiast, Confidence: ConfidenceInitial, Traits: append([]string(nil), enthusiastTraits...), Scores: scores}
	case matchesAny(lower, seekingWords):
		return Result{Archetype: fallbackSeeker, Confidence: ConfidenceInitial, Traits: append([]string(nil), seekerTraits...), Scores: scores}
	default:
		return Result{Archetype: fallbackEveryman, Confidence: ConfidenceInitial, Traits: append([]string(nil), everymanTraits...), Scores: scores}
	}
}

// #endregion scoring
