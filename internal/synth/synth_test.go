package synth

import (
	"strings"
	"testing"

	"github.com/lealimarco/the-psychologist-dog/internal/intent"
)

func TestArchetypeListCoversAllTwelve(t *testing.T) {
	list := ArchetypeList()
	for _, name := range []string{
		"The Caregiver", "The Creator", "The Explorer", "The Hero",
		"The Innocent", "The Jester", "The Lover", "The Magician",
		"The Everyman", "The Ruler", "The Sage", "The Rebel",
	} {
		if !strings.Contains(list, name) {
			t.Errorf("archetype list missing %q", name)
		}
	}
}

func TestGenericRecommendations(t *testing.T) {
	got := GenericRecommendations("The Creator")
	if !strings.Contains(got, "As a The Creator") {
		t.Errorf("missing archetype framing: %q", got)
	}
	if !strings.Contains(got, "The Artist's Way") || !strings.Contains(got, "David Bowie") {
		t.Errorf("missing table picks: %q", got)
	}
	// Empty label falls back to the default archetype.
	if got := GenericRecommendations(""); !strings.Contains(got, "The Explorer") {
		t.Errorf("empty label: %q", got)
	}
}

func TestCategoryFallback(t *testing.T) {
	cases := []struct {
		name     string
		category intent.Category
		label    string
		contains string
	}{
		{"rock music", intent.CategoryRockMusic, "", "Led Zeppelin"},
		{"books", intent.CategoryBooks, "", "The Night Circus"},
		{"known category prompt", intent.CategoryMovies, "", "movies"},
		{"no category no archetype", "", "", "The Alchemist"},
		{"no category with archetype", "", "The Sage", "Meditations"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CategoryFallback(tc.category, tc.label)
			if !strings.Contains(got, tc.contains) {
				t.Errorf("fallback for %q: got %q, want to contain %q", tc.category, got, tc.contains)
			}
		})
	}
}

func TestReveal(t *testing.T) {
	got := Reveal(4, "The Creator", []string{"artistic", "imaginative"})
	for _, want := range []string{"4 questions", "The Creator", "artistic, imaginative", "Amadeus", "The Artist's Way"} {
		if !strings.Contains(got, want) {
			t.Errorf("reveal: got %q, want to contain %q", got, want)
		}
	}
	// No traits still reads naturally.
	if got := Reveal(3, "The Sage", nil); !strings.Contains(got, "thoughtful and engaging") {
		t.Errorf("reveal without traits: %q", got)
	}
}

func TestNeedMoreAnswers(t *testing.T) {
	if got := NeedMoreAnswers(2, "Next question?"); !strings.Contains(got, "1 more answer ") {
		t.Errorf("singular: %q", got)
	}
	if got := NeedMoreAnswers(0, "Next question?"); !strings.Contains(got, "3 more answers") {
		t.Errorf("plural: %q", got)
	}
}

func TestAppendQuestion(t *testing.T) {
	if got := AppendQuestion("Interesting!", "What drives you?"); got != "Interesting! What drives you?" {
		t.Errorf("append: %q", got)
	}
	if got := AppendQuestion("What drives you?", "Next?"); got != "What drives you?" {
		t.Errorf("already a question: %q", got)
	}
	if got := AppendQuestion("   ", "What drives you?"); got != "What drives you?" {
		t.Errorf("empty reply: %q", got)
	}
}

func TestInferenceFallback(t *testing.T) {
	got := InferenceFallback(false, "What drives you?")
	if !strings.Contains(got, "What drives you?") {
		t.Errorf("fallback without archetype: %q", got)
	}
	if strings.Contains(strings.ToLower(got), "error") {
		t.Errorf("fallback leaks error wording: %q", got)
	}
	got = InferenceFallback(true, "")
	if !strings.Contains(got, "personality analysis") {
		t.Errorf("fallback with archetype: %q", got)
	}
}

func TestScrubTokens(t *testing.T) {
	in := "<|start_header_id|>assistant<|end_header_id|> Hello there <|eot_id|>"
	if got := ScrubTokens(in); got != "assistant Hello there" {
		t.Errorf("scrub: got %q", got)
	}
}

func TestLowQuality(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  bool
	}{
		{"normal reply", "That sounds wonderful! What else?", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"tokens only", "<|start_header_id|><|end_header_id|>", true},
		{"stray marker", "hello <| world", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LowQuality(tc.reply); got != tc.want {
				t.Errorf("LowQuality(%q): got %v, want %v", tc.reply, got, tc.want)
			}
		})
	}
}
