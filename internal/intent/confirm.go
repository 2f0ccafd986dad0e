package intent

import "strings"

// #region confirmation

// Quit confirmation accepts a few extra words because users often repeat
// the command itself ("quit", "end") instead of saying yes.
var quitConfirmWords = []string{"yes", "yeah", "yep", "sure", "okay", "confirm", "quit", "end"}

var restartConfirmWords = []string{"yes", "yeah", "yep", "sure", "okay"}

var cancelWords = []string{"no", "nah", "not now", "cancel", "continue"}

var restartInsteadWords = []string{"restart", "start over", "begin again"}

// ConfirmsQuit reports whether an utterance confirms ending the session.
func ConfirmsQuit(utterance string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(utterance)), quitConfirmWords)
}

// ConfirmsRestart reports whether an utterance confirms starting over.
func ConfirmsRestart(utterance string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(utterance)), restartConfirmWords)
}

// Cancels reports whether an utterance declines a pending confirmation.
func Cancels(utterance string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(utterance)), cancelWords)
}

// AsksRestartInstead reports whether, mid quit-confirmation, the user
// pivots to a restart.
func AsksRestartInstead(utterance string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(utterance)), restartInsteadWords)
}

// #endregion confirmation

// #region archetype-request

var archetypeRequestPhrases = []string{
	"archetype", "personality", "mbti", "what am i", "which type", "tell me who i am",
}

// AsksForResults reports whether an utterance explicitly requests the
// personality analysis outcome.
func AsksForResults(utterance string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(utterance)), archetypeRequestPhrases)
}

// #endregion archetype-request

// #region explore

var exploreWords = []string{"explore", "more questions", "personality", "learn more", "continue"}

// WantsExplore reports whether, after a reveal, the user chooses to keep
// answering questionnaire questions instead of hearing recommendations.
func WantsExplore(utterance string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(utterance)), exploreWords)
}

// #endregion explore
