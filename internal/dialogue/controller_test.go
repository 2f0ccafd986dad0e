package dialogue

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lealimarco/the-psychologist-dog/internal/session"
	"github.com/lealimarco/the-psychologist-dog/internal/synth"
)

// #region fakes

// scriptedSpeech serves listen results from a queue and records what was
// spoken. Listen blocks until the test feeds a result.
type scriptedSpeech struct {
	mu     sync.Mutex
	spoken []string
	input  chan ListenResult
}

func newScriptedSpeech() *scriptedSpeech {
	return &scriptedSpeech{input: make(chan ListenResult, 8)}
}

func (s *scriptedSpeech) Prepare(ctx context.Context) error { return nil }

func (s *scriptedSpeech) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	s.spoken = append(s.spoken, text)
	s.mu.Unlock()
	return nil
}

func (s *scriptedSpeech) Listen(ctx context.Context) (ListenResult, error) {
	select {
	case res := <-s.input:
		return res, nil
	case <-ctx.Done():
		return ListenResult{}, ctx.Err()
	}
}

func (s *scriptedSpeech) say(text string) { s.input <- ListenResult{Text: text, Heard: true} }

func (s *scriptedSpeech) silence() { s.input <- ListenResult{} }

func (s *scriptedSpeech) windowClosed() { s.input <- ListenResult{WindowClosed: true} }

func (s *scriptedSpeech) transcript() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.spoken...)
}

// scriptedInference returns canned replies via fn.
type scriptedInference struct {
	mu    sync.Mutex
	calls [][]session.Turn
	fn    func(msgs []session.Turn, temperature float64) (string, error)
}

func (i *scriptedInference) Chat(ctx context.Context, msgs []session.Turn, temperature float64) (string, error) {
	i.mu.Lock()
	i.calls = append(i.calls, msgs)
	i.mu.Unlock()
	return i.fn(msgs, temperature)
}

func (i *scriptedInference) callCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.calls)
}

// #endregion fakes

// #region helpers

func controllerHarness(t *testing.T, infer *scriptedInference) (*Controller, *scriptedSpeech, *session.Store, <-chan Snapshot) {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "dialogue.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	speech := newScriptedSpeech()
	ctrl := NewController(NewMachine(session.New(synth.SystemPrompt)), speech, infer, store)
	snaps, cancelSub := ctrl.Subscribe()
	t.Cleanup(cancelSub)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go ctrl.Run(ctx)

	return ctrl, speech, store, snaps
}

// awaitState drains snapshots until the machine reaches want.
func awaitState(t *testing.T, snaps <-chan Snapshot, want State) Snapshot {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case snap := <-snaps:
			if snap.State == want {
				return snap
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %q", want)
		}
	}
}

// #endregion helpers

func TestControllerFullConversation(t *testing.T) {
	infer := &scriptedInference{fn: func(msgs []session.Turn, temperature float64) (string, error) {
		last := msgs[len(msgs)-1]
		if strings.Contains(last.Text, "wants to quit") {
			return "Are you sure you want to quit?", nil
		}
		return "That sounds lovely.", nil
	}}
	ctrl, speech, store, snaps := controllerHarness(t, infer)

	awaitState(t, snaps, StateIdle)
	ctrl.Submit(Start{})
	awaitState(t, snaps, StateListening)

	speech.say("quiet evenings mostly")
	snap := awaitState(t, snaps, StateListening)
	if snap.AnswerCount != 1 {
		t.Fatalf("answers: got %d, want 1", snap.AnswerCount)
	}

	speech.say("okay goodbye")
	awaitState(t, snaps, StateConfirmingQuit)
	speech.say("yes")
	snap = awaitState(t, snaps, StateIdle)

	// The context reset back to just the system prompt.
	if snap.TurnCount != 1 {
		t.Errorf("turn count after quit: got %d, want 1", snap.TurnCount)
	}
	if snap.AnswerCount != 0 {
		t.Errorf("answers survived quit: %d", snap.AnswerCount)
	}

	spoken := speech.transcript()
	if len(spoken) == 0 || spoken[0] != synth.Greeting {
		t.Fatalf("first utterance: %v", spoken)
	}
	if spoken[len(spoken)-1] != synth.Goodbye {
		t.Errorf("last utterance: %q", spoken[len(spoken)-1])
	}

	// The finished session was persisted under its original ID.
	recs, err := store.ListSessions(10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(recs) < 2 {
		t.Fatalf("sessions: got %d, want the finished one plus the reopened one", len(recs))
	}
	var persisted bool
	for _, rec := range recs {
		turns, err := store.ListTurns(rec.SessionID)
		if err != nil {
			t.Fatalf("list turns: %v", err)
		}
		for _, turn := range turns {
			if turn.Text == "quiet evenings mostly" {
				persisted = true
			}
		}
	}
	if !persisted {
		t.Error("user answer never reached the store")
	}
}

func TestControllerSilenceGoesThroughInference(t *testing.T) {
	var sawNudge bool
	var mu sync.Mutex
	infer := &scriptedInference{fn: func(msgs []session.Turn, temperature float64) (string, error) {
		last := msgs[len(msgs)-1]
		if last.Text == synth.SilenceNudge {
			mu.Lock()
			sawNudge = true
			mu.Unlock()
		}
		return "Still with me? Tell me something about your week.", nil
	}}
	ctrl, speech, _, snaps := controllerHarness(t, infer)

	awaitState(t, snaps, StateIdle)
	ctrl.Submit(Start{})
	awaitState(t, snaps, StateListening)

	speech.silence()
	awaitState(t, snaps, StateListening)

	mu.Lock()
	defer mu.Unlock()
	if !sawNudge {
		t.Error("silence never reached inference as a nudge")
	}
}

func TestControllerListenWindowRearms(t *testing.T) {
	infer := &scriptedInference{fn: func(msgs []session.Turn, temperature float64) (string, error) {
		return "Noted.", nil
	}}
	ctrl, speech, _, snaps := controllerHarness(t, infer)

	awaitState(t, snaps, StateIdle)
	ctrl.Submit(Start{})
	awaitState(t, snaps, StateListening)

	// An expired listening window re-arms capture; only the utterance
	// after it should reach inference.
	speech.windowClosed()
	speech.say("quiet evenings mostly")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case snap := <-snaps:
			if snap.State != StateListening || snap.AnswerCount != 1 {
				continue
			}
			if snap.NoInputStreak != 0 {
				t.Errorf("window completion counted as silence: streak %d", snap.NoInputStreak)
			}
			if got := infer.callCount(); got != 1 {
				t.Errorf("inference calls: got %d, want 1", got)
			}
			return
		case <-deadline:
			t.Fatal("answer never landed after the window completed")
		}
	}
}

func TestControllerInferenceFailureStaysConversational(t *testing.T) {
	infer := &scriptedInference{fn: func(msgs []session.Turn, temperature float64) (string, error) {
		return "", context.DeadlineExceeded
	}}
	ctrl, speech, _, snaps := controllerHarness(t, infer)

	awaitState(t, snaps, StateIdle)
	ctrl.Submit(Start{})
	awaitState(t, snaps, StateListening)

	speech.say("quiet evenings mostly")
	snap := awaitState(t, snaps, StateListening)

	if strings.Contains(strings.ToLower(snap.LastSpokenText), "error") {
		t.Errorf("error wording surfaced: %q", snap.LastSpokenText)
	}
	if !strings.Contains(snap.LastSpokenText, session.Questions[0]) {
		t.Errorf("fallback should keep the questionnaire moving: %q", snap.LastSpokenText)
	}
	if infer.callCount() == 0 {
		t.Fatal("inference never called")
	}
}

func TestControllerAnalysisPersisted(t *testing.T) {
	infer := &scriptedInference{fn: func(msgs []session.Turn, temperature float64) (string, error) {
		return "How interesting!", nil
	}}
	ctrl, speech, store, snaps := controllerHarness(t, infer)

	awaitState(t, snaps, StateIdle)
	ctrl.Submit(Start{})
	awaitState(t, snaps, StateListening)

	speech.say("i love painting and writing poems")
	snap := awaitState(t, snaps, StateListeningPostAnalysis)
	if snap.Archetype != "The Creator" {
		t.Fatalf("archetype: got %q", snap.Archetype)
	}

	rec, err := store.GetSession(snap.SessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if rec.Archetype != "The Creator" || rec.MBTIType != "INFP" {
		t.Errorf("persisted analysis: %+v", rec)
	}
}
