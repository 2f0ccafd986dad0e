package archetype

// #region rule-table

// keywordGroup contributes weight points and two trait labels when any of
// its keywords appears as a substring of the lowercased input.
type keywordGroup struct {
	keywords []string
	weight   int
	traits   [2]string
}

// rule bundles the ordered keyword groups for one archetype.
type rule struct {
	name   string
	groups []keywordGroup
}

// rules is the fixed archetype list. Declaration order is the tie-break:
// on an exact score tie the earliest archetype wins.
var rules = []rule{
	{
		name: "The Creator",
		groups: []keywordGroup{
			{[]string{"art", "creative", "create", "design"}, 4, [2]string{"artistic", "innovative"}},
			{[]string{"paint", "draw", "sketch", "sculpt"}, 3, [2]string{"expressive", "craftsman"}},
			{[]string{"music", "compose", "song", "melody", "david bowie"}, 3, [2]string{"musical", "harmonious"}},
			{[]string{"write", "poem", "story", "novel", "imagine"}, 3, [2]string{"imaginative", "storyteller"}},
			{[]string{"invent", "build", "make", "craft"}, 2, [2]string{"inventive", "builder"}},
		},
	},
	{
		name: "The Explorer",
		groups: []keywordGroup{
			{[]string{"adventure", "explore", "discover", "journey"}, 4, [2]string{"adventurous", "exploratory"}},
			{[]string{"travel", "trip", "voyage", "wander"}, 3, [2]string{"traveler", "nomadic"}},
			{[]string{"nature", "hiking", "outdoor", "wild", "mountain"}, 3, [2]string{"nature-loving", "outdoorsy"}},
			{[]string{"new", "try", "experience", "different"}, 2, [2]string{"curious", "open-minded"}},
			{[]string{"free", "independent", "autonomous", "self-reliant"}, 2, [2]string{"independent", "free-spirited"}},
		},
	},
	{
		name: "The Sage",
		groups: []keywordGroup{
			{[]string{"learn", "study", "research", "knowledge"}, 4, [2]string{"knowledgeable", "studious"}},
			{[]string{"book", "read", "library", "literature"}, 3, [2]string{"well-read", "literary"}},
			{[]string{"think", "philosophy", "wisdom", "contemplate"}, 3, [2]string{"thoughtful", "philosophical"}},
			{[]string{"introvert", "alone", "quiet", "solitude", "reflect"}, 3, [2]string{"introspective", "reflective"}},
			{[]string{"analyze", "logic", "reason", "understand"}, 2, [2]string{"analytical", "logical"}},
		},
	},
	{
		name: "The Caregiver",
		groups: []keywordGroup{
			{[]string{"help", "care", "support", "nurture"}, 4, [2]string{"caring", "supportive"}},
			{[]string{"family", "friend", "community", "together"}, 3, [2]string{"family-oriented", "community-focused"}},
			{[]string{"empathy", "compassion", "kind", "understanding"}, 3, [2]string{"empathetic", "compassionate"}},
			{[]string{"protect", "safe", "secure", "shield"}, 2, [2]string{"protective", "guardian"}},
			{[]string{"give", "share", "donate", "volunteer"}, 2, [2]string{"generous", "giving"}},
		},
	},
	{
		name: "The Ruler",
		groups: []keywordGroup{
			{[]string{"lead", "leader", "manage", "direct"}, 4, [2]string{"leadership", "managerial"}},
			{[]string{"organize", "plan", "structure", "system"}, 3, [2]string{"organized", "systematic"}},
			{[]string{"responsible", "duty", "accountable", "reliable"}, 3, [2]string{"responsible", "accountable"}},
			{[]string{"decision", "choose", "decide", "judge"}, 2, [2]string{"decisive", "judicious"}},
			{[]string{"control", "authority", "power", "command"}, 2, [2]string{"authoritative", "commanding"}},
		},
	},
	{
		name: "The Jester",
		groups: []keywordGroup{
			{[]string{"funny", "humor", "joke", "laugh"}, 4, [2]string{"humorous", "funny"}},
			{[]string{"fun", "play", "game", "enjoy"}, 3, [2]string{"playful", "fun-loving"}},
			{[]string{"party", "celebrate", "festive", "social"}, 3, [2]string{"social", "festive"}},
			{[]string{"entertain", "perform", "show", "comedy"}, 2, [2]string{"entertaining", "performative"}},
			{[]string{"light", "bright", "positive", "optimistic"}, 2, [2]string{"lighthearted", "optimistic"}},
		},
	},
	{
		name: "The Lover",
		groups: []keywordGroup{
			{[]string{"love", "romance", "relationship", "partner"}, 4, [2]string{"romantic", "loving"}},
			{[]string{"passion", "desire", "intense", "fire"}, 3, [2]string{"passionate", "intense"}},
			{[]string{"beauty", "beautiful", "aesthetic", "gorgeous"}, 3, [2]string{"appreciative", "aesthetic"}},
			{[]string{"sensual", "touch", "feel", "intimate"}, 2, [2]string{"sensual", "tactile"}},
			{[]string{"harmony", "balance", "peace", "calm"}, 2, [2]string{"harmonious", "balanced"}},
		},
	},
	{
		name: "The Hero",
		groups: []keywordGroup{
			{[]string{"brave", "courage", "hero", "bravery"}, 4, [2]string{"courageous", "brave"}},
			{[]string{"protect", "defend", "guard", "shield"}, 3, [2]string{"protective", "defensive"}},
			{[]string{"strong", "power", "strength", "mighty"}, 3, [2]string{"strong", "powerful"}},
			{[]string{"challenge", "overcome", "fight", "battle"}, 2, [2]string{"determined", "resilient"}},
			{[]string{"save", "rescue", "help", "aid"}, 2, [2]string{"rescuer", "helper"}},
		},
	},
	{
		name: "The Everyman",
		groups: []keywordGroup{
			{[]string{"normal", "average", "regular", "ordinary"}, 4, [2]string{"relatable", "down-to-earth"}},
			{[]string{"practical", "realistic", "pragmatic", "sensible"}, 3, [2]string{"practical", "pragmatic"}},
			{[]string{"simple", "easy", "basic", "straightforward"}, 3, [2]string{"simple", "straightforward"}},
			{[]string{"honest", "genuine", "authentic", "real"}, 2, [2]string{"authentic", "genuine"}},
			{[]string{"work", "job", "career", "profession"}, 2, [2]string{"hardworking", "diligent"}},
		},
	},
	{
		name: "The Rebel",
		groups: []keywordGroup{
			{[]string{"rebel", "revolution", "revolutionary", "anti"}, 4, [2]string{"revolutionary", "rebellious"}},
			{[]string{"freedom", "free", "liberty", "independent"}, 3, [2]string{"freedom-loving", "independent"}},
			{[]string{"change", "transform", "reform", "different"}, 3, [2]string{"change-agent", "transformative"}},
			{[]string{"nonconform", "unique", "different", "individual"}, 2, [2]string{"nonconformist", "individualistic"}},
			{[]string{"radical", "extreme", "intense", "strong"}, 2, [2]string{"radical", "intense"}},
		},
	},
	{
		name: "The Magician",
		groups: []keywordGroup{
			{[]string{"magic", "mystic", "spiritual", "universe"}, 4, [2]string{"mystical", "spiritual"}},
			{[]string{"vision", "dream", "future", "prophet"}, 3, [2]string{"visionary", "dreamer"}},
			{[]string{"transform", "change", "evolve", "grow"}, 3, [2]string{"transformative", "evolving"}},
			{[]string{"energy", "power", "force", "vibration"}, 2, [2]string{"energetic", "powerful"}},
			{[]string{"intuition", "instinct", "gut", "feeling"}, 2, [2]string{"intuitive", "instinctive"}},
		},
	},
	{
		name: "The Innocent",
		groups: []keywordGroup{
			{[]string{"innocent", "pure", "clean", "good"}, 4, [2]string{"pure-hearted", "innocent"}},
			{[]string{"optimistic", "positive", "hope", "hopeful"}, 3, [2]string{"optimistic", "hopeful"}},
			{[]string{"trust", "faith", "believe", "confidence"}, 3, [2]string{"trusting", "faithful"}},
			{[]string{"joy", "happy", "delight", "pleasure"}, 2, [2]string{"joyful", "happy"}},
			{[]string{"simple", "easy", "pure", "clear"}, 2, [2]string{"simple", "clear"}},
		},
	},
}

// #endregion rule-table

// #region sentiment-fallback

// Zero-score fallback vocabularies. Checked in order: enthusiasm, seeking.
var enthusiasmWords = []string{"like", "love", "enjoy", "adore"}
var seekingWords = []string{"want", "need", "seek", "search"}

const (
	fallbackEnthusiast = "The Enthusiast"
	fallbackSeeker     = "The Seeker"
	fallbackEveryman   = "The Everyman"
)

var enthusiastTraits = []string{"passionate", "engaged", "enthusiastic"}
var seekerTraits = []string{"curious", "exploring", "searching"}
var everymanTraits = []string{"balanced", "adaptable", "practical"}

// #endregion sentiment-fallback

// #region mbti

// mbtiByArchetype maps archetype labels to their closest MBTI type.
var mbtiByArchetype = map[string]string{
	"The Creator":   "INFP",
	"The Explorer":  "ENFP",
	"The Sage":      "INTJ",
	"The Caregiver": "ISFJ",
	"The Lover":     "ENFJ",
	"The Ruler":     "ENTJ",
	"The Jester":    "ESFP",
	"The Hero":      "ESTP",
	"The Everyman":  "ISFP",
	"The Rebel":     "ENTP",
	"The Magician":  "INFJ",
	"The Seeker":    "ENFP",
}

// MBTI returns the MBTI type for an archetype, defaulting to INFP.
func MBTI(archetype string) string {
	if t, ok := mbtiByArchetype[archetype]; ok {
		return t
	}
	return "INFP"
}

// #endregion mbti
