package archetype

import (
	"strings"
	"testing"
)

func TestScoreKeywordMatching(t *testing.T) {
	cases := []struct {
		name          string
		text          string
		wantArchetype string
		wantMin       Confidence
		wantTrait     string
	}{
		{
			name:          "creative disclosure",
			text:          "I love painting and writing poems",
			wantArchetype: "The Creator",
			wantMin:       ConfidenceModerate,
			wantTrait:     "imaginative",
		},
		{
			name:          "outdoor disclosure",
			text:          "I enjoy hiking and discovering new trails",
			wantArchetype: "The Explorer",
			wantMin:       ConfidenceVeryHigh,
			wantTrait:     "adventurous",
		},
		{
			name:          "bookish disclosure",
			text:          "I read books alone and think and analyze and learn",
			wantArchetype: "The Sage",
			wantMin:       ConfidenceVeryHigh,
			wantTrait:     "knowledgeable",
		},
		{
			name:          "caring disclosure",
			text:          "I help my family and volunteer at the shelter",
			wantArchetype: "The Caregiver",
			wantMin:       ConfidenceHigh,
			wantTrait:     "caring",
		},
		{
			name:          "comic disclosure",
			text:          "I tell jokes at every party, people laugh a lot",
			wantArchetype: "The Jester",
			wantMin:       ConfidenceHigh,
			wantTrait:     "humorous",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.text)
			if got.Archetype != tc.wantArchetype {
				t.Errorf("archetype: got %q, want %q (scores %v)", got.Archetype, tc.wantArchetype, got.Scores)
			}
			if !got.Confidence.AtLeast(tc.wantMin) {
				t.Errorf("confidence: got %q, want at least %q", got.Confidence, tc.wantMin)
			}
			if !containsTrait(got.Traits, tc.wantTrait) {
				t.Errorf("traits: got %v, want to include %q", got.Traits, tc.wantTrait)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	const text = "I enjoy hiking and painting landscapes"
	first := Score(text)
	for i := 0; i < 5; i++ {
		got := Score(text)
		if got.Archetype != first.Archetype || got.Confidence != first.Confidence {
			t.Fatalf("run %d: got %q/%q, want %q/%q", i, got.Archetype, got.Confidence, first.Archetype, first.Confidence)
		}
	}
}

func TestScoreTieBreakUsesTableOrder(t *testing.T) {
	// "art" and "adventure" score 4 apiece for their archetypes. The
	// earlier table entry must win the tie.
	got := Score("art adventure")
	if got.Scores["The Creator"] != got.Scores["The Explorer"] {
		t.Fatalf("setup: scores diverged, creator %d explorer %d", got.Scores["The Creator"], got.Scores["The Explorer"])
	}
	if got.Archetype != "The Creator" {
		t.Errorf("archetype: got %q, want %q", got.Archetype, "The Creator")
	}
}

func TestScoreTraitsSpanArchetypes(t *testing.T) {
	// "love" scores for The Lover and "hiking" for The Explorer. The
	// Lover wins, but the trait list carries both matches in table order.
	got := Score("i love hiking")
	if got.Archetype != "The Lover" {
		t.Fatalf("archetype: got %q, want %q (scores %v)", got.Archetype, "The Lover", got.Scores)
	}
	want := []string{"nature-loving", "outdoorsy", "romantic", "loving"}
	if len(got.Traits) != len(want) {
		t.Fatalf("traits: got %v, want %v", got.Traits, want)
	}
	for i, tr := range want {
		if got.Traits[i] != tr {
			t.Errorf("trait %d: got %q, want %q", i, got.Traits[i], tr)
		}
	}
}

func TestScoreSentimentFallback(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"enthusiasm verb", "i adore this so much", "The Enthusiast"},
		{"seeking verb", "i want something", "The Seeker"},
		{"no signal at all", "zzz qqq", "The Everyman"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.text)
			if got.Archetype != tc.want {
				t.Errorf("archetype: got %q, want %q (scores %v)", got.Archetype, tc.want, got.Scores)
			}
			if got.Confidence != ConfidenceInitial {
				t.Errorf("confidence: got %q, want %q", got.Confidence, ConfidenceInitial)
			}
			if len(got.Traits) == 0 {
				t.Error("traits: got none, want fallback traits")
			}
		})
	}
}

func TestScoreTraitsCappedAndDeduped(t *testing.T) {
	got := Score("I read books alone and think and analyze and learn")
	if len(got.Traits) > maxTraits {
		t.Errorf("traits: got %d, want at most %d", len(got.Traits), maxTraits)
	}
	seen := map[string]bool{}
	for _, tr := range got.Traits {
		if seen[tr] {
			t.Errorf("traits: %q repeated in %v", tr, got.Traits)
		}
		seen[tr] = true
	}
}

func TestConfidenceBuckets(t *testing.T) {
	cases := []struct {
		score int
		want  Confidence
	}{
		{0, ConfidenceInitial},
		{1, ConfidenceInitial},
		{2, ConfidenceLow},
		{3, ConfidenceLow},
		{4, ConfidenceModerate},
		{5, ConfidenceModerate},
		{6, ConfidenceHigh},
		{7, ConfidenceHigh},
		{8, ConfidenceVeryHigh},
		{12, ConfidenceVeryHigh},
	}
	for _, tc := range cases {
		if got := confidenceFor(tc.score); got != tc.want {
			t.Errorf("score %d: got %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestMBTI(t *testing.T) {
	if got := MBTI("The Sage"); got != "INTJ" {
		t.Errorf("sage: got %q, want INTJ", got)
	}
	if got := MBTI("The Enthusiast"); got != "INFP" {
		t.Errorf("unmapped default: got %q, want INFP", got)
	}
}

func TestRecommend(t *testing.T) {
	creator := Recommend("The Creator")
	if len(creator.Movies) == 0 || creator.Movies[0] != "Amadeus" {
		t.Errorf("creator movies: got %v", creator.Movies)
	}
	fallback := Recommend("The Enthusiast")
	explorer := Recommend("The Explorer")
	if len(fallback.Movies) == 0 || fallback.Movies[0] != explorer.Movies[0] {
		t.Errorf("fallback: got %v, want explorer picks", fallback.Movies)
	}
}

func containsTrait(traits []string, want string) bool {
	for _, tr := range traits {
		if strings.Contains(tr, want) {
			return true
		}
	}
	return false
}
