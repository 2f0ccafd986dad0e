// Package dialogue implements the turn-taking state machine. The machine
// is a pure core: Handle consumes one event, mutates only the session
// context, and returns effects for its runner to perform. All speech and
// inference I/O lives behind those effects.
package dialogue

import (
	"strings"

	"github.com/lealimarco/the-psychologist-dog/internal/intent"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
	"github.com/lealimarco/the-psychologist-dog/internal/synth"
)

// #region machine

// Machine drives one conversation. Not safe for concurrent use; the
// controller serializes all events onto it.
type Machine struct {
	ctx   *session.Context
	state State

	// freshArchetype marks a disclosure analysis whose reveal is being
	// spoken; postAnalysis marks the discussion mode entered after any
	// reveal. quitting marks a queued goodbye.
	freshArchetype bool
	postAnalysis   bool
	quitting       bool

	pendingCategory intent.Category
	pendingWantsOne bool
	disclosureText  string
}

// NewMachine returns a machine in Preparing, bound to ctx.
func NewMachine(ctx *session.Context) *Machine {
	return &Machine{ctx: ctx, state: StatePreparing}
}

// State reports the current node.
func (m *Machine) State() State { return m.state }

// Context exposes the bound session context for read access.
func (m *Machine) Context() *session.Context { return m.ctx }

// Boot issues the initial speech-channel preparation.
func (m *Machine) Boot() []Effect {
	m.ctx.PendingAsyncKind = session.AsyncNone
	return []Effect{Prepare{}}
}

// #endregion machine

// #region handle

// Handle consumes one event and returns the effects to run. Events that
// make no sense in the current state are discarded.
func (m *Machine) Handle(ev Event) []Effect {
	switch m.state {
	case StatePreparing:
		if _, ok := ev.(SpeechReady); ok {
			m.state = StateIdle
			return m.quiesce()
		}

	case StateIdle:
		if _, ok := ev.(Start); ok {
			m.ctx.Append(session.RoleAssistant, synth.Greeting)
			m.state = StateSpeaking
			return m.speak(synth.Greeting)
		}

	case StateSpeaking:
		if _, ok := ev.(SpeechDone); ok {
			return m.afterSpeech()
		}

	case StateListening:
		return m.handleListening(ev)

	case StateConfirmingQuit:
		return m.handleConfirmingQuit(ev)

	case StateConfirmingRestart:
		return m.handleConfirmingRestart(ev)

	case StateGeneratingRecommendations:
		return m.handleGeneratingRecommendations(ev)

	case StateAnalyzingDisclosure:
		if done, ok := ev.(AnalysisDone); ok {
			m.ctx.Profile.ApplyAnalysis(done.Result)
			m.freshArchetype = true
			reply := synth.DisclosureReveal(m.disclosureText, done.Result)
			m.ctx.Append(session.RoleAssistant, reply)
			m.state = StateSpeaking
			return m.speak(reply)
		}

	case StateRunningInference:
		return m.handleRunningInference(ev)

	case StateAnalyzingPersonality:
		if done, ok := ev.(AnalysisDone); ok {
			m.ctx.Profile.ApplyAnalysis(done.Result)
			m.postAnalysis = true
			reply := synth.Reveal(m.ctx.Profile.ValidAnswerCount(), done.Result.Archetype, done.Result.Traits)
			m.ctx.Append(session.RoleAssistant, reply)
			m.state = StateSpeaking
			return m.speak(reply)
		}

	case StateListeningPostAnalysis:
		return m.handleListeningPostAnalysis(ev)

	case StateDiscussingArchetype:
		switch ev.(type) {
		case InferenceDone, InferenceFailed:
			// The reply always comes from the table so the discussion
			// can never stall on a thin or failed completion.
			reply := synth.DiscussionRecommendations(m.ctx.Profile.Archetype)
			m.ctx.Append(session.RoleAssistant, reply)
			m.state = StateSpeaking
			return m.speak(reply)
		}
	}
	return nil
}

// #endregion handle

// #region speaking

func (m *Machine) afterSpeech() []Effect {
	switch {
	case m.quitting:
		m.quitting = false
		m.freshArchetype = false
		m.postAnalysis = false
		m.ctx.Reset(synth.SystemPrompt)
		m.state = StateIdle
		return m.quiesce()
	case m.freshArchetype || m.postAnalysis:
		m.freshArchetype = false
		m.postAnalysis = true
		m.state = StateListeningPostAnalysis
		return m.listen()
	default:
		m.state = StateListening
		return m.listen()
	}
}

// #endregion speaking

// #region listening

func (m *Machine) handleListening(ev Event) []Effect {
	switch e := ev.(type) {
	case Utterance:
		m.ctx.AppendUser(e.Text)
		m.ctx.NoInputStreak = 0
		return m.dispatchIntent(e.Text)
	case NoInput:
		return m.handleSilence()
	case ListenDone:
		return m.listen()
	}
	return nil
}

func (m *Machine) dispatchIntent(text string) []Effect {
	view := intent.SessionView{
		AnswerCount:    m.ctx.Profile.ValidAnswerCount(),
		ArchetypeKnown: m.ctx.Profile.ArchetypeKnown(),
	}
	switch intent.Classify(text, view) {
	case intent.Exit:
		m.state = StateConfirmingQuit
		return m.infer(m.ctx.SamplingTemperature, session.Turn{Role: session.RoleUser, Text: synth.QuitConfirmInstruction})

	case intent.Restart:
		m.state = StateConfirmingRestart
		return m.infer(m.ctx.SamplingTemperature, session.Turn{Role: session.RoleUser, Text: synth.RestartConfirmInstruction})

	case intent.RequestRecommendation:
		m.pendingCategory, _ = intent.ExtractCategory(text)
		m.pendingWantsOne = intent.WantsSinglePick(text)
		m.state = StateGeneratingRecommendations
		return m.inferDetached(0.8,
			session.Turn{Role: session.RoleSystem, Text: synth.RecommendationSystemPrompt(m.pendingWantsOne)},
			session.Turn{Role: session.RoleUser, Text: synth.RecommendationUserPrompt(m.pendingCategory, m.pendingWantsOne)},
		)

	case intent.DisclosureWithArchetypeQuery, intent.Disclosure:
		m.disclosureText = text
		m.state = StateAnalyzingDisclosure
		return m.analyze(text)

	case intent.ListArchetypes:
		reply := synth.ArchetypeList()
		m.ctx.Append(session.RoleAssistant, reply)
		m.state = StateSpeaking
		return m.speak(reply)

	case intent.ArchetypeSpecificRecommendation:
		reply := synth.ArchetypeRecommendations(m.ctx.Profile.Archetype)
		m.ctx.Append(session.RoleAssistant, reply)
		m.state = StateSpeaking
		return m.speak(reply)

	default: // FallbackAnswer
		m.ctx.Profile.Record(m.ctx.LastAskedQuestion(), text)
		m.state = StateRunningInference
		return m.infer(m.ctx.SamplingTemperature)
	}
}

func (m *Machine) handleSilence() []Effect {
	m.ctx.NoInputStreak++
	if m.ctx.NoInputStreak >= 2 {
		m.ctx.EscalateTemperature()
	}
	m.ctx.Append(session.RoleUser, synth.SilenceNudge)
	m.state = StateRunningInference
	return m.infer(m.ctx.SamplingTemperature)
}

// #endregion listening

// #region confirmations

func (m *Machine) handleConfirmingQuit(ev Event) []Effect {
	switch e := ev.(type) {
	case InferenceDone:
		reply := synth.ScrubTokens(e.Text)
		if synth.LowQuality(reply) || !strings.Contains(reply, "?") {
			reply = synth.QuitConfirmPrompt
		}
		m.ctx.Append(session.RoleAssistant, reply)
		return m.speak(reply)
	case InferenceFailed:
		m.ctx.Append(session.RoleAssistant, synth.QuitConfirmPrompt)
		return m.speak(synth.QuitConfirmPrompt)
	case SpeechDone:
		return m.listen()
	case Utterance:
		m.ctx.AppendUser(e.Text)
		m.ctx.NoInputStreak = 0
		switch {
		case intent.AsksRestartInstead(e.Text):
			m.state = StateConfirmingRestart
			return m.infer(m.ctx.SamplingTemperature, session.Turn{Role: session.RoleUser, Text: synth.RestartConfirmInstruction})
		case intent.ConfirmsQuit(e.Text):
			m.ctx.Append(session.RoleAssistant, synth.Goodbye)
			m.quitting = true
			m.state = StateSpeaking
			return m.speak(synth.Goodbye)
		case intent.Cancels(e.Text):
			return m.speakAssistant(synth.ContinueAfterCancel)
		default:
			return m.speakAssistant(synth.AssumeContinue)
		}
	case NoInput:
		return m.speakAssistant(synth.ContinueAfterSilence)
	case ListenDone:
		return m.listen()
	}
	return nil
}

func (m *Machine) handleConfirmingRestart(ev Event) []Effect {
	switch e := ev.(type) {
	case InferenceDone:
		reply := synth.ScrubTokens(e.Text)
		if synth.LowQuality(reply) || !strings.Contains(reply, "?") {
			reply = synth.RestartConfirmPrompt
		}
		m.ctx.Append(session.RoleAssistant, reply)
		return m.speak(reply)
	case InferenceFailed:
		m.ctx.Append(session.RoleAssistant, synth.RestartConfirmPrompt)
		return m.speak(synth.RestartConfirmPrompt)
	case SpeechDone:
		return m.listen()
	case Utterance:
		m.ctx.AppendUser(e.Text)
		m.ctx.NoInputStreak = 0
		if intent.ConfirmsRestart(e.Text) && !intent.Cancels(e.Text) {
			m.ctx.Reset(synth.SystemPrompt)
			m.freshArchetype = false
			m.postAnalysis = false
			reply := synth.RestartAck(session.Questions[0])
			m.ctx.Append(session.RoleAssistant, reply)
			m.ctx.AdvanceQuestion()
			m.state = StateSpeaking
			return m.speak(reply)
		}
		return m.speakAssistant(synth.ResumeAfterCancel)
	case NoInput:
		return m.speakAssistant(synth.ContinueAfterSilence)
	case ListenDone:
		return m.listen()
	}
	return nil
}

// #endregion confirmations

// #region recommendations

func (m *Machine) handleGeneratingRecommendations(ev Event) []Effect {
	switch e := ev.(type) {
	case InferenceDone:
		reply := synth.ScrubTokens(e.Text)
		if synth.LowQuality(reply) || len(reply) < 30 {
			reply = synth.CategoryFallback(m.pendingCategory, m.ctx.Profile.Archetype)
		} else if !strings.HasSuffix(strings.TrimSpace(reply), "?") {
			reply = reply + " Would you like more specific recommendations, or shall we explore your personality further?"
		}
		return m.speakAssistant(reply)
	case InferenceFailed:
		return m.speakAssistant(synth.CategoryFallback(m.pendingCategory, m.ctx.Profile.Archetype))
	}
	return nil
}

// #endregion recommendations

// #region inference

func (m *Machine) handleRunningInference(ev Event) []Effect {
	switch e := ev.(type) {
	case InferenceDone:
		reply := synth.ScrubTokens(e.Text)
		if synth.LowQuality(reply) {
			return m.inferenceFallback()
		}
		return m.afterInference(reply)
	case InferenceFailed:
		return m.inferenceFallback()
	}
	return nil
}

// afterInference picks the post-completion outcome by guard priority:
// explicit results request with enough answers, explicit request without,
// auto-analysis, questionnaire continuation, plain reply.
func (m *Machine) afterInference(reply string) []Effect {
	asks := intent.AsksForResults(m.ctx.LastUserText())
	count := m.ctx.Profile.ValidAnswerCount()

	switch {
	case asks && count >= 3:
		m.ctx.Append(session.RoleAssistant, reply)
		m.state = StateAnalyzingPersonality
		return m.analyze(m.ctx.Profile.CorpusText())

	case asks && count < 3:
		q := m.nextQuestionOr("Tell me more about yourself.")
		msg := synth.NeedMoreAnswers(count, q)
		m.ctx.AdvanceQuestion()
		return m.speakAssistant(msg)

	case count >= 3 && !m.ctx.Profile.ArchetypeKnown():
		m.ctx.Append(session.RoleAssistant, reply)
		m.state = StateAnalyzingPersonality
		return m.analyze(m.ctx.Profile.CorpusText())

	case m.ctx.TurnIndex < len(session.Questions) && count < 3:
		q := m.nextQuestionOr("Tell me more about yourself.")
		msg := synth.AppendQuestion(reply, q)
		m.ctx.AdvanceQuestion()
		return m.speakAssistant(msg)

	default:
		return m.speakAssistant(reply)
	}
}

func (m *Machine) inferenceFallback() []Effect {
	known := m.ctx.Profile.ArchetypeKnown()
	reply := synth.InferenceFallback(known, m.nextQuestionOr("What would you like to share?"))
	if !known {
		m.ctx.AdvanceQuestion()
	}
	return m.speakAssistant(reply)
}

func (m *Machine) nextQuestionOr(fallback string) string {
	if q, ok := m.ctx.CurrentQuestion(); ok {
		return q
	}
	return fallback
}

// #endregion inference

// #region post-analysis

func (m *Machine) handleListeningPostAnalysis(ev Event) []Effect {
	switch e := ev.(type) {
	case Utterance:
		m.ctx.AppendUser(e.Text)
		m.ctx.NoInputStreak = 0
		// Quit and restart still work after the reveal. A recommendation
		// request beats the explore vocabulary; anything else is
		// conversation about the result.
		view := intent.SessionView{
			AnswerCount:    m.ctx.Profile.ValidAnswerCount(),
			ArchetypeKnown: m.ctx.Profile.ArchetypeKnown(),
		}
		switch intent.Classify(e.Text, view) {
		case intent.Exit:
			m.state = StateConfirmingQuit
			return m.infer(m.ctx.SamplingTemperature, session.Turn{Role: session.RoleUser, Text: synth.QuitConfirmInstruction})
		case intent.Restart:
			m.state = StateConfirmingRestart
			return m.infer(m.ctx.SamplingTemperature, session.Turn{Role: session.RoleUser, Text: synth.RestartConfirmInstruction})
		case intent.RequestRecommendation, intent.ArchetypeSpecificRecommendation:
			m.state = StateDiscussingArchetype
			return m.inferDiscussion()
		}
		if intent.WantsExplore(e.Text) {
			m.freshArchetype = false
			m.postAnalysis = false
			reply := synth.ContinueExploration(m.nextQuestionOr(""))
			m.ctx.AdvanceQuestion()
			return m.speakAssistant(reply)
		}
		m.state = StateDiscussingArchetype
		return m.inferDiscussion()
	case NoInput:
		m.ctx.NoInputStreak++
		if m.ctx.NoInputStreak >= 2 {
			m.ctx.EscalateTemperature()
		}
		m.ctx.Append(session.RoleUser, synth.SilenceNudge)
		m.state = StateDiscussingArchetype
		return m.inferDiscussion()
	case ListenDone:
		return m.listen()
	}
	return nil
}

// inferDiscussion swaps the questionnaire system prompt for the
// archetype-discussion one over a detached snapshot.
func (m *Machine) inferDiscussion() []Effect {
	msgs := []session.Turn{{
		Role: session.RoleSystem,
		Text: synth.DiscussionSystemPrompt(m.ctx.Profile.Archetype, m.ctx.Profile.MBTIType),
	}}
	for _, t := range m.ctx.TurnLog {
		if t.Role != session.RoleSystem {
			msgs = append(msgs, t)
		}
	}
	m.ctx.PendingAsyncKind = session.AsyncInferring
	return []Effect{Infer{Messages: msgs, Temperature: 0.9}}
}

// #endregion post-analysis

// #region effect-helpers

func (m *Machine) quiesce() []Effect {
	m.ctx.PendingAsyncKind = session.AsyncNone
	return nil
}

func (m *Machine) speak(text string) []Effect {
	m.ctx.LastSpokenText = text
	m.ctx.PendingAsyncKind = session.AsyncSpeaking
	return []Effect{Speak{Text: text}}
}

// speakAssistant appends the reply to the turn log and speaks it.
func (m *Machine) speakAssistant(text string) []Effect {
	m.ctx.Append(session.RoleAssistant, text)
	m.state = StateSpeaking
	return m.speak(text)
}

func (m *Machine) listen() []Effect {
	m.ctx.PendingAsyncKind = session.AsyncRecognizing
	return []Effect{Listen{}}
}

// infer snapshots the live turn log, appending any extra instruction
// turns that must not persist in the log.
func (m *Machine) infer(temperature float64, extra ...session.Turn) []Effect {
	msgs := make([]session.Turn, 0, len(m.ctx.TurnLog)+len(extra))
	msgs = append(msgs, m.ctx.TurnLog...)
	msgs = append(msgs, extra...)
	m.ctx.PendingAsyncKind = session.AsyncInferring
	return []Effect{Infer{Messages: msgs, Temperature: temperature}}
}

// inferDetached sends only the given turns, ignoring the log.
func (m *Machine) inferDetached(temperature float64, msgs ...session.Turn) []Effect {
	m.ctx.PendingAsyncKind = session.AsyncInferring
	return []Effect{Infer{Messages: msgs, Temperature: temperature}}
}

func (m *Machine) analyze(text string) []Effect {
	m.ctx.PendingAsyncKind = session.AsyncInferring
	return []Effect{Analyze{Text: text}}
}

// #endregion effect-helpers
