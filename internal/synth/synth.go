// Package synth produces every assistant utterance that does not come from
// the inference service: greetings, confirmations, archetype reveals,
// recommendation lists and the deterministic fallbacks used when inference
// is unavailable. Nothing here can fail; the conversation must always have
// something to say.
package synth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
	"github.com/lealimarco/the-psychologist-dog/internal/intent"
)

// #region fixed-texts

// SystemPrompt seeds each session's turn log.
const SystemPrompt = `You are a personality analysis assistant. Your main goal is to ask psychology questions to understand the user's personality and eventually determine their archetype.

IMPORTANT RULES:
1. When the user answers your psychology questions, simply acknowledge their answer and ask the next question
2. ONLY provide recommendations if the user explicitly asks for them
3. Keep responses brief and conversational
4. Always end with a clear psychology question
5. Never use special tokens, formatting, or markdown

Your primary focus is asking the psychology questions, not making recommendations.`

const (
	Greeting = "hi, tell me what you love and I will guess who you are. Or I will make you questions."
	Goodbye  = "Goodbye! It was nice talking to you."

	QuitConfirmPrompt    = "Are you sure you want to quit our conversation?"
	RestartConfirmPrompt = "Do you want to restart the personality test from the beginning?"
	ContinueAfterCancel  = "Great! Let's continue our conversation."
	AssumeContinue       = "I'll assume you want to continue. Let's keep going!"
	ContinueAfterSilence = "Let's continue our conversation."
	ResumeAfterCancel    = "Okay, let's continue where we left off."

	// SilenceNudge is injected as a user turn before re-invoking inference.
	SilenceNudge = "The user was silent. Suggest a polite prompt to encourage them to speak."
)

// ArchetypeList enumerates all archetypes with their headline traits.
func ArchetypeList() string {
	return "Sure! Here are the main personality archetypes: " +
		"1. The Caregiver - Compassionate, nurturing, protective " +
		"2. The Creator - Imaginative, innovative, artistic " +
		"3. The Explorer - Adventurous, curious, independent " +
		"4. The Hero - Courageous, determined, strong-willed " +
		"5. The Innocent - Optimistic, trusting, pure-hearted " +
		"6. The Jester - Playful, humorous, entertaining " +
		"7. The Lover - Passionate, intimate, appreciative " +
		"8. The Magician - Visionary, transformative, charismatic " +
		"9. The Everyman - Practical, relatable, grounded " +
		"10. The Ruler - Authoritative, responsible, organized " +
		"11. The Sage - Wise, knowledgeable, thoughtful " +
		"12. The Rebel - Revolutionary, challenging, non-conformist. " +
		"Which of these resonates most with you?"
}

// #endregion fixed-texts

// #region recommendations

// GenericRecommendations builds a cross-category list from the table,
// three picks per category. Unknown labels fall back inside Recommend.
func GenericRecommendations(archetypeLabel string) string {
	if archetypeLabel == "" {
		archetypeLabel = "The Explorer"
	}
	recs := archetype.Recommend(archetypeLabel)
	return fmt.Sprintf(
		"As a %s, here are personalized recommendations for you: Books: %s Music: %s Movies: %s Activities: %s "+
			"Would you like more specific recommendations in any category, or shall we continue exploring your personality?",
		archetypeLabel,
		joinTop(recs.Books, 3), joinTop(recs.Music, 3), joinTop(recs.Movies, 3), joinTop(recs.Activities, 3),
	)
}

// ArchetypeRecommendations is the tighter two-per-category variant used
// when the user asks for picks tied to their detected archetype.
func ArchetypeRecommendations(archetypeLabel string) string {
	if archetypeLabel == "" {
		archetypeLabel = "The Explorer"
	}
	recs := archetype.Recommend(archetypeLabel)
	return fmt.Sprintf(
		"As a %s, here are personalized recommendations for you: Books: %s. Movies: %s. Music: %s. Activities: %s. "+
			"Would you like more specific recommendations in any particular category?",
		archetypeLabel,
		joinTop(recs.Books, 2), joinTop(recs.Movies, 2), joinTop(recs.Music, 2), joinTop(recs.Activities, 2),
	)
}

// CategoryFallback answers a recommendation request locally when inference
// produced nothing usable.
func CategoryFallback(category intent.Category, archetypeLabel string) string {
	switch category {
	case intent.CategoryRockMusic:
		return "Since you asked about rock music, here are some great recommendations: " +
			"1. Led Zeppelin - Stairway to Heaven 2. Queen - Bohemian Rhapsody 3. Arctic Monkeys - Do I Wanna Know? " +
			"What era or style of rock music interests you most?"
	case intent.CategoryBooks:
		return "Here are some book recommendations you might enjoy: " +
			"1. The Night Circus by Erin Morgenstern 2. Project Hail Mary by Andy Weir 3. Where the Crawdads Sing by Delia Owens. " +
			"What genre of books do you typically enjoy most?"
	case "":
		if archetypeLabel != "" {
			return GenericRecommendations(archetypeLabel)
		}
		return "I'd love to recommend something for you! " +
			"Books: The Alchemist by Paulo Coelho, To Kill a Mockingbird by Harper Lee. " +
			"Music: Classical piano, Indie folk, Jazz standards. " +
			"Movies: The Shawshank Redemption, Spirited Away, Inception. " +
			"What type of recommendations are you most interested in?"
	default:
		return fmt.Sprintf(
			"I'd love to recommend some %s for you! To give you more personalized suggestions, what do you usually enjoy in that category?",
			category,
		)
	}
}

// #endregion recommendations

// #region questionnaire

// Reveal announces the analysis outcome with one pick per category.
func Reveal(answerCount int, archetypeLabel string, traits []string) string {
	recs := archetype.Recommend(archetypeLabel)
	bookRec := pickFirst(recs.Books, "thought-provoking literature")
	movieRec := pickFirst(recs.Movies, "intellectual films")
	activityRec := pickFirst(recs.Activities, "learning activities")

	traitsText := "thoughtful and engaging"
	if len(traits) > 0 {
		traitsText = strings.Join(traits, ", ")
	}

	return fmt.Sprintf(
		"Based on our %d questions, I believe you are %s. This suggests you're naturally %s. "+
			"As a %s, you might enjoy %q, %q, or %s. How does that resonate with you?",
		answerCount, archetypeLabel, traitsText, archetypeLabel, bookRec, movieRec, activityRec,
	)
}

// DisclosureReveal announces a quick analysis derived from one statement
// rather than the questionnaire.
func DisclosureReveal(utterance string, r archetype.Result) string {
	traitsText := "thoughtful and engaging"
	if len(r.Traits) > 0 {
		traitsText = strings.Join(r.Traits, ", ")
	}
	return fmt.Sprintf(
		"Based on you saying %q, I detect you might be the %q archetype with %s confidence! Key traits: %s. Would you like recommendations or to continue exploring?",
		utterance, r.Archetype, r.Confidence, traitsText,
	)
}

// DiscussionRecommendations is the post-analysis recommendation reply,
// always derived from the table regardless of what inference returned.
func DiscussionRecommendations(archetypeLabel string) string {
	if archetypeLabel == "" {
		archetypeLabel = "The Explorer"
	}
	recs := archetype.Recommend(archetypeLabel)
	return fmt.Sprintf(
		"Of course! As a %s, here are more personalized recommendations for you: Books: %s. Movies: %s. Music: %s. Activities: %s. "+
			"Which category interests you most for even more specific suggestions?",
		archetypeLabel,
		joinTop(recs.Books, 3), joinTop(recs.Movies, 3), joinTop(recs.Music, 3), joinTop(recs.Activities, 3),
	)
}

// NeedMoreAnswers explains why the analysis cannot run yet and keeps the
// questionnaire moving.
func NeedMoreAnswers(answerCount int, nextQuestion string) string {
	needed := 3 - answerCount
	plural := "s"
	if needed == 1 {
		plural = ""
	}
	if nextQuestion == "" {
		nextQuestion = "Tell me more about yourself."
	}
	return fmt.Sprintf(
		"I'd love to tell you your archetype! But first, I need to learn a bit more about you. I need %d more answer%s for a good analysis. %s",
		needed, plural, nextQuestion,
	)
}

// ContinueExploration resumes the questionnaire after a reveal.
func ContinueExploration(nextQuestion string) string {
	if nextQuestion == "" {
		nextQuestion = "Tell me more about what makes you feel truly alive and engaged?"
	}
	return "Great! Let's continue exploring your personality. " + nextQuestion
}

// RestartAck confirms a restart and asks the first question again.
func RestartAck(firstQuestion string) string {
	return "Okay, let's start over from the beginning! " + firstQuestion
}

// AppendQuestion tacks the next questionnaire item onto a reply unless the
// reply already ends in a question, to avoid double-asking.
func AppendQuestion(reply, nextQuestion string) string {
	trimmed := strings.TrimSpace(reply)
	if strings.HasSuffix(trimmed, "?") {
		return reply
	}
	if trimmed == "" {
		return nextQuestion
	}
	return trimmed + " " + nextQuestion
}

// #endregion questionnaire

// #region fallback

// InferenceFallback is spoken in place of a failed inference call. The
// failure itself is never surfaced.
func InferenceFallback(archetypeKnown bool, nextQuestion string) string {
	if archetypeKnown {
		return "I'd love to hear your thoughts on the personality analysis we just discussed. What resonates with you?"
	}
	if nextQuestion == "" {
		nextQuestion = "What would you like to share?"
	}
	return "I apologize for the technical issue. " + nextQuestion
}

var controlTokenPattern = regexp.MustCompile(`<\|.*?\|>`)

// ScrubTokens strips model control tokens that occasionally leak into
// replies.
func ScrubTokens(reply string) string {
	return strings.TrimSpace(controlTokenPattern.ReplaceAllString(reply, ""))
}

// LowQuality reports whether an inference reply should be replaced by a
// local fallback: empty after scrubbing, or still carrying token markers.
func LowQuality(reply string) bool {
	scrubbed := ScrubTokens(reply)
	if scrubbed == "" {
		return true
	}
	return strings.Contains(scrubbed, "<|") || strings.Contains(scrubbed, "|>")
}

// #endregion fallback

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func pickFirst(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}
