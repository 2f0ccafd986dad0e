package session

// Questions is the fixed questionnaire, walked in order by TurnIndex.
var Questions = []string{
	"Do you enjoy meeting new people or prefer staying alone?",
	"Tell me a secret about yourself in one word.",
	"I challenge you: say the first thing that comes to mind.",
	"What kind of activities make you feel most alive?",
	"How do you typically handle stressful situations?",
	"What's your approach to making important decisions?",
	"What do you value most in your friendships?",
	"How do you recharge after a long day?",
	"What kind of environments help you be most productive?",
	"What are your thoughts on taking risks and trying new things?",
	"When you have free time, what do you most enjoy doing?",
	"How do you express your creativity?",
	"What qualities do you admire in other people?",
	"How do you handle conflicts or disagreements?",
	"What does your ideal weekend look like?",
	"What kind of books, movies, or music do you enjoy most?",
	"How do you approach learning new things?",
	"What makes you feel accomplished or satisfied?",
}

// CurrentQuestion returns the question at the cursor, or false when the
// questionnaire is exhausted.
func (c *Context) CurrentQuestion() (string, bool) {
	if c.TurnIndex < 0 || c.TurnIndex >= len(Questions) {
		return "", false
	}
	return Questions[c.TurnIndex], true
}

// AdvanceQuestion moves the cursor forward. It never moves backward;
// Reset is the only way back to zero.
func (c *Context) AdvanceQuestion() {
	if c.TurnIndex < len(Questions) {
		c.TurnIndex++
	}
}

// LastAskedQuestion returns the question the cursor most recently passed,
// used when pairing an incoming answer with its prompt.
func (c *Context) LastAskedQuestion() string {
	idx := c.TurnIndex - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Questions) {
		idx = len(Questions) - 1
	}
	return Questions[idx]
}
