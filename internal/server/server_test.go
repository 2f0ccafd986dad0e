package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/lealimarco/the-psychologist-dog/internal/dialogue"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
	"github.com/lealimarco/the-psychologist-dog/internal/synth"
)

// #region fakes

// idlePorts satisfy the controller without doing anything: speech blocks
// on Listen until cancelled, inference always replies.
type idleSpeech struct {
	mu     sync.Mutex
	spoken []string
}

func (s *idleSpeech) Prepare(ctx context.Context) error { return nil }

func (s *idleSpeech) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	s.spoken = append(s.spoken, text)
	s.mu.Unlock()
	return nil
}

func (s *idleSpeech) Listen(ctx context.Context) (dialogue.ListenResult, error) {
	<-ctx.Done()
	return dialogue.ListenResult{}, ctx.Err()
}

type idleInference struct{}

func (idleInference) Chat(ctx context.Context, msgs []session.Turn, temperature float64) (string, error) {
	return "Noted.", nil
}

// #endregion fakes

// #region helpers

func serverHarness(t *testing.T) (*Server, *dialogue.Controller, <-chan dialogue.Snapshot) {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "dialogue.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctrl := dialogue.NewController(
		dialogue.NewMachine(session.New(synth.SystemPrompt)),
		&idleSpeech{}, idleInference{}, store,
	)
	snaps, cancelSub := ctrl.Subscribe()
	t.Cleanup(cancelSub)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go ctrl.Run(ctx)

	return NewServer(ctrl, store), ctrl, snaps
}

func awaitState(t *testing.T, snaps <-chan dialogue.Snapshot, want dialogue.State) dialogue.Snapshot {
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

func TestHealth(t *testing.T) {
	srv, _, _ := serverHarness(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", resp.StatusCode)
	}
}

func TestStartCommand(t *testing.T) {
	srv, _, snaps := serverHarness(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	awaitState(t, snaps, dialogue.StateIdle)

	resp, err := http.Post(ts.URL+"/api/start", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status: got %d", resp.StatusCode)
	}

	snap := awaitState(t, snaps, dialogue.StateListening)
	if snap.LastSpokenText != synth.Greeting {
		t.Errorf("greeting: %q", snap.LastSpokenText)
	}
}

func TestStateEndpoint(t *testing.T) {
	srv, _, snaps := serverHarness(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	awaitState(t, snaps, dialogue.StateIdle)

	resp, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var snap dialogue.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.State != dialogue.StateIdle {
		t.Errorf("state: got %q", snap.State)
	}
	if snap.SessionID == "" {
		t.Error("missing session id")
	}
}

func TestSessionHistory(t *testing.T) {
	srv, _, snaps := serverHarness(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	awaitState(t, snaps, dialogue.StateIdle)

	resp, err := http.Get(ts.URL + "/api/sessions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var recs []session.SessionRecord
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("sessions: got %d, want the open one", len(recs))
	}

	missing, err := http.Get(ts.URL + "/api/sessions/no-such-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("missing session status: got %d", missing.StatusCode)
	}
}

func TestStateStream(t *testing.T) {
	srv, _, snaps := serverHarness(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	awaitState(t, snaps, dialogue.StateIdle)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/state"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	// First frame is the current snapshot.
	var first dialogue.Snapshot
	if err := wsjson.Read(ctx, conn, &first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.State != dialogue.StateIdle {
		t.Errorf("first frame state: %q", first.State)
	}

	// Starting the conversation produces more frames.
	resp, err := http.Post(ts.URL+"/api/start", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	var next dialogue.Snapshot
	for next.State != dialogue.StateListening {
		if err := wsjson.Read(ctx, conn, &next); err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if next.LastSpokenText != synth.Greeting {
		t.Errorf("stream snapshot: %+v", next)
	}
}
