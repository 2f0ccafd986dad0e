package intent

import "strings"

// #region category

// Category names a recommendation bucket extracted from an utterance.
type Category string

const (
	CategoryRockMusic  Category = "rock music"
	CategoryMusic      Category = "music"
	CategoryMovies     Category = "movies"
	CategoryBooks      Category = "books"
	CategoryActivities Category = "activities"
)

// ExtractCategory pulls a recommendation bucket out of an utterance.
// "rock music" is checked before plain "music" so the narrower ask wins.
func ExtractCategory(utterance string) (Category, bool) {
	u := strings.ToLower(utterance)
	switch {
	case strings.Contains(u, "rock music") || strings.Contains(u, "rock songs") || strings.Contains(u, "rock band"):
		return CategoryRockMusic, true
	case strings.Contains(u, "music") || strings.Contains(u, "songs") || strings.Contains(u, "band"):
		return CategoryMusic, true
	case strings.Contains(u, "movie") || strings.Contains(u, "film") || strings.Contains(u, "watch") || strings.Contains(u, "cinema"):
		return CategoryMovies, true
	case strings.Contains(u, "book") || strings.Contains(u, "read") || strings.Contains(u, "novel"):
		return CategoryBooks, true
	case strings.Contains(u, "activity") || strings.Contains(u, "hobby") || strings.Contains(u, "do"):
		return CategoryActivities, true
	}
	return "", false
}

var singlePickPhrases = []string{"just one", "only one", "one movie", "one book", "single"}

// WantsSinglePick reports whether the user asked for exactly one item.
func WantsSinglePick(utterance string) bool {
	return containsAny(strings.ToLower(utterance), singlePickPhrases)
}

// #endregion category
