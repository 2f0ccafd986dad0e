package dialogue

import (
	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// #region states

// State names one node of the turn-taking machine.
type State string

const (
	StatePreparing                 State = "preparing"
	StateIdle                      State = "idle"
	StateSpeaking                  State = "speaking"
	StateListening                 State = "listening"
	StateConfirmingQuit            State = "confirming-quit"
	StateConfirmingRestart         State = "confirming-restart"
	StateGeneratingRecommendations State = "generating-recommendations"
	StateAnalyzingDisclosure       State = "analyzing-disclosure"
	StateRunningInference          State = "running-inference"
	StateAnalyzingPersonality      State = "analyzing-personality"
	StateListeningPostAnalysis     State = "listening-post-analysis"
	StateDiscussingArchetype       State = "discussing-archetype"
)

// #endregion states

// #region events

// Event is an external stimulus fed to the machine, one at a time.
type Event interface{ isEvent() }

// SpeechReady reports the speech channel finished preparing.
type SpeechReady struct{}

// Start begins a conversation from Idle.
type Start struct{}

// SpeechDone reports playback of the queued utterance completed.
type SpeechDone struct{}

// ListenDone reports the listening window closed without a final result.
type ListenDone struct{}

// Utterance carries a recognized user utterance.
type Utterance struct{ Text string }

// NoInput reports the recognizer's silence window elapsed.
type NoInput struct{}

// InferenceDone carries a successful inference reply.
type InferenceDone struct{ Text string }

// InferenceFailed reports the inference call was unusable, whatever the
// underlying cause.
type InferenceFailed struct{}

// AnalysisDone carries a scorer result back into the loop.
type AnalysisDone struct{ Result archetype.Result }

func (SpeechReady) isEvent()     {}
func (Start) isEvent()           {}
func (SpeechDone) isEvent()      {}
func (ListenDone) isEvent()      {}
func (Utterance) isEvent()       {}
func (NoInput) isEvent()         {}
func (InferenceDone) isEvent()   {}
func (InferenceFailed) isEvent() {}
func (AnalysisDone) isEvent()    {}

// #endregion events

// #region effects

// Effect is a side effect the machine asks its runner to perform. The
// machine itself never touches the outside world.
type Effect interface{ isEffect() }

// Prepare readies the speech channel.
type Prepare struct{}

// Listen opens a recognition window.
type Listen struct{}

// Speak queues text for synthesis and playback.
type Speak struct{ Text string }

// Infer requests a model completion over a message snapshot. The snapshot
// is detached from the live turn log; instruction turns may be present
// that never appear in the log.
type Infer struct {
	Messages    []session.Turn
	Temperature float64
}

// Analyze requests an archetype scoring pass over accumulated text. The
// scorer is local and pure; routing it through an effect keeps the
// one-outstanding-operation rule uniform across all async work.
type Analyze struct{ Text string }

func (Prepare) isEffect() {}
func (Listen) isEffect()  {}
func (Speak) isEffect()   {}
func (Infer) isEffect()   {}
func (Analyze) isEffect() {}

// #endregion effects
