package synth

import (
	"fmt"
	"strings"

	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
	"github.com/lealimarco/the-psychologist-dog/internal/intent"
)

// #region instruction-turns

// Instruction turns injected into an inference request without being
// persisted to the turn log.
const (
	QuitConfirmInstruction = "The user wants to quit the conversation. Ask them a simple, direct confirmation question like 'Are you sure you want to quit?' Keep it brief and friendly."

	RestartConfirmInstruction = "The user asked to restart the personality test. Ask them a brief, friendly confirmation question like 'Do you want to restart from the beginning?'"
)

// #endregion instruction-turns

// #region recommendation-prompts

// RecommendationSystemPrompt frames a recommendation-only inference call.
func RecommendationSystemPrompt(wantsOne bool) string {
	tail := "Format as simple lists with numbers."
	if wantsOne {
		tail = "Provide ONLY ONE recommendation as requested, with detailed explanation."
	}
	return "You are a creative recommendation assistant. Provide SPECIFIC recommendations with actual titles and brief descriptions. " +
		"NEVER use generic phrases like \"Here are some recommendations\" or section headers. " +
		"ALWAYS provide concrete examples that people can actually try. " + tail
}

// RecommendationUserPrompt asks for picks in one category, or across all
// categories when none was extracted.
func RecommendationUserPrompt(category intent.Category, wantsOne bool) string {
	switch category {
	case intent.CategoryRockMusic:
		if wantsOne {
			return "Provide ONE specific rock music recommendation with actual band name and song/album example. Be concise."
		}
		return "Provide 2-3 rock music recommendations with actual band names and song/album examples. Include a mix of classic and modern rock. Format as a simple numbered list with brief descriptions."
	case intent.CategoryMusic:
		if wantsOne {
			return "Provide ONE specific music recommendation with actual artist name and song/album example. Be concise."
		}
		return "Provide 2-3 specific music recommendations across different genres with actual artist names and song/album examples. Format as a simple numbered list with brief descriptions."
	case intent.CategoryBooks:
		if wantsOne {
			return "Provide ONE specific book recommendation with actual title and author. Be concise."
		}
		return "Provide 2-3 specific book recommendations with actual titles and authors. Include brief descriptions of what makes each book special. Format as a simple numbered list."
	case intent.CategoryMovies:
		if wantsOne {
			return "Provide ONE specific movie recommendation with actual title. Be concise."
		}
		return "Provide 2-3 specific movie recommendations with actual titles and brief descriptions. Be concrete and mention specific examples. Format as a simple numbered list."
	case "":
		if wantsOne {
			return "Provide ONE specific recommendation for any category. Choose the most impactful recommendation and explain in detail why it's special."
		}
		return "Provide 2 specific recommendations each for books, music, movies, and activities. Be concrete with actual titles and brief descriptions. Format as simple lists with numbers."
	default:
		if wantsOne {
			return fmt.Sprintf("Provide ONE specific %s recommendation with actual title or name. Be very specific and detailed about why this one recommendation is perfect.", category)
		}
		return fmt.Sprintf("Provide 2-3 specific %s recommendations with actual titles or names and brief descriptions. Be concrete and mention specific examples. Format as a simple numbered list.", category)
	}
}

// #endregion recommendation-prompts

// #region discussion-prompt

// DiscussionSystemPrompt frames the post-analysis conversation, feeding
// the table picks to the model so it cannot come back empty-handed.
func DiscussionSystemPrompt(archetypeLabel, mbtiType string) string {
	if mbtiType == "" {
		mbtiType = "unique personality"
	}
	recs := archetype.Recommend(archetypeLabel)
	return fmt.Sprintf(
		"You are discussing personality results. The user is a %q (%s) and asked for MORE recommendations. "+
			"You MUST provide recommendations and never return empty content. Here are specific recommendations to use: "+
			"BOOKS: %s. MOVIES: %s. ACTIVITIES: %s. MUSIC: %s. "+
			"Provide 3-4 specific recommendations across different categories. Be enthusiastic and helpful, and close by asking which category interests the user most.",
		archetypeLabel, mbtiType,
		strings.Join(recs.Books, ", "), strings.Join(recs.Movies, ", "),
		strings.Join(recs.Activities, ", "), strings.Join(recs.Music, ", "),
	)
}

// #endregion discussion-prompt
