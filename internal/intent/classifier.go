// Package intent resolves a recognized utterance to exactly one intent tag
// through a strict priority cascade. The first matching rule wins and later
// rules are never consulted, so ordering in the rule slice is load-bearing.
package intent

import (
	"regexp"
	"strings"
)

// #region tags

// Intent is the resolved category of one user utterance.
type Intent string

const (
	Exit                            Intent = "exit"
	Restart                         Intent = "restart"
	RequestRecommendation           Intent = "request-recommendation"
	DisclosureWithArchetypeQuery    Intent = "disclosure-with-archetype-query"
	Disclosure                      Intent = "disclosure"
	ListArchetypes                  Intent = "list-archetypes"
	ArchetypeSpecificRecommendation Intent = "archetype-specific-recommendation"
	FallbackAnswer                  Intent = "fallback-answer"
)

// SessionView is the slice of session state the cascade consults.
type SessionView struct {
	AnswerCount    int
	ArchetypeKnown bool
}

// #endregion tags

// #region vocabularies

// Exit wants whole words. A plain substring check would fire on
// "butterfly" (bye) or "extend" (end).
var exitPattern = regexp.MustCompile(`\b(exit|quit|stop|goodbye|bye|end|finish)\b`)

var restartWords = []string{
	"restart", "start over", "begin again", "go back", "reset", "new test", "redo",
}

var recommendationWords = []string{
	"recommendation", "recommend", "suggest", "what should",
	"what to watch", "what to read", "what to listen",
	"tell me about", "give me", "show me",
	"can you recommend", "could you suggest", "what do you recommend",
	"any recommendations", "suggest some", "recommend some",
}

var archetypeQueryPhrases = []string{
	"which archetype", "what archetype", "my archetype", "archetype am i",
	"i want to know my archetype", "tell me my archetype", "what is my archetype",
}

var disclosurePhrases = []string{
	"i like", "i love", "i enjoy", "i am", "i feel",
	"my favorite", "i prefer", "i hate", "i dislike",
	"i'm into", "i'm interested in", "i'm passionate about",
	"i adore", "i appreciate", "i value", "i care about",
}

// Narrower disclosure list used by the combined archetype-query rule.
var shortDisclosurePhrases = []string{
	"i like", "i love", "i enjoy", "i am", "i feel", "my favorite", "i prefer",
}

var interestWords = []string{
	"music", "movies", "books", "reading", "cinema", "art",
	"sports", "travel", "food", "cooking", "gaming", "hiking",
	"photography", "dancing", "singing", "writing", "painting",
}

var archetypeListPhrases = []string{
	"list of archetypes", "what are the archetypes", "tell me the archetypes",
	"archetypes list", "tell me all the archetypes", "all the archetypes",
}

// #endregion vocabularies

// #region cascade

type rule struct {
	intent Intent
	match  func(u string, v SessionView) bool
}

var cascade = []rule{
	{Exit, func(u string, _ SessionView) bool {
		return exitPattern.MatchString(u)
	}},
	{Restart, func(u string, _ SessionView) bool {
		return containsAny(u, restartWords)
	}},
	{RequestRecommendation, func(u string, _ SessionView) bool {
		return containsAny(u, recommendationWords)
	}},
	{DisclosureWithArchetypeQuery, func(u string, v SessionView) bool {
		return v.AnswerCount == 0 &&
			containsAny(u, archetypeQueryPhrases) &&
			containsAny(u, shortDisclosurePhrases)
	}},
	{Disclosure, func(u string, v SessionView) bool {
		if v.AnswerCount != 0 {
			return false
		}
		if containsAny(u, disclosurePhrases) && len(u) > 10 {
			return true
		}
		return containsAny(u, interestWords) && strings.Contains(u, "i ") && len(u) > 15
	}},
	{ListArchetypes, func(u string, _ SessionView) bool {
		return containsAny(u, archetypeListPhrases)
	}},
	{ArchetypeSpecificRecommendation, func(u string, v SessionView) bool {
		return v.ArchetypeKnown &&
			strings.Contains(u, "archetype") &&
			(strings.Contains(u, "recommend") || strings.Contains(u, "suggest"))
	}},
	{FallbackAnswer, func(string, SessionView) bool {
		return true
	}},
}

// Classify maps an utterance and session view to one intent tag. The final
// fallback rule always matches, so this never fails to classify.
func Classify(utterance string, view SessionView) Intent {
	u := strings.ToLower(strings.TrimSpace(utterance))
	for _, r := range cascade {
		if r.match(u, view) {
			return r.intent
		}
	}
	return FallbackAnswer
}

func containsAny(u string, vocab []string) bool {
	for _, w := range vocab {
		if strings.Contains(u, w) {
			return true
		}
	}
	return false
}

// #endregion cascade
