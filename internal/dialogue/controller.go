package dialogue

// #region imports
import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lealimarco/the-psychologist-dog/internal/archetype"
	"github.com/lealimarco/the-psychologist-dog/internal/intent"
	"github.com/lealimarco/the-psychologist-dog/internal/logging"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// #endregion

// #region ports

// SpeechPort is the synthesis and recognition channel. All calls block
// until the operation completes or ctx is cancelled.
type SpeechPort interface {
	Prepare(ctx context.Context) error
	Speak(ctx context.Context, text string) error
	Listen(ctx context.Context) (ListenResult, error)
}

// ListenResult is one recognition round. Heard is false when the round
// ended without an utterance; WindowClosed distinguishes an expired
// listening window, which just re-arms capture, from a no-input timeout.
type ListenResult struct {
	Text         string
	Heard        bool
	WindowClosed bool
}

// InferencePort produces one completion for a message snapshot.
type InferencePort interface {
	Chat(ctx context.Context, msgs []session.Turn, temperature float64) (string, error)
}

// #endregion ports

// #region snapshot

// Snapshot is a read-only view of the conversation published to
// subscribers after every handled event.
type Snapshot struct {
	State          State                `json:"state"`
	SessionID      string               `json:"session_id"`
	TurnCount      int                  `json:"turn_count"`
	AnswerCount    int                  `json:"answer_count"`
	Archetype      string               `json:"archetype,omitempty"`
	MBTIType       string               `json:"mbti_type,omitempty"`
	Confidence     archetype.Confidence `json:"confidence,omitempty"`
	Temperature    float64              `json:"temperature"`
	NoInputStreak  int                  `json:"no_input_streak"`
	LastSpokenText string               `json:"last_spoken_text,omitempty"`
}

// #endregion snapshot

// #region controller

// Controller runs a Machine against real speech and inference ports. It
// owns the event loop: every async operation carries the sequence number
// it was dispatched under, and results from superseded operations are
// dropped so a stale completion can never corrupt the conversation.
type Controller struct {
	machine *Machine
	speech  SpeechPort
	infer   InferencePort
	store   *session.Store // nil disables persistence

	events chan envelope

	subsMu sync.Mutex
	subs   map[chan Snapshot]struct{}
	last   Snapshot

	sessionID string
	seq       uint64

	// persistence cursors into the live context
	persistedTurns  int
	persistedAnswer int
	analysisSaved   bool
}

// envelope tags an event with the dispatch sequence that produced it.
// externalSeq marks events injected from outside the effect loop; those
// are always accepted.
type envelope struct {
	seq uint64
	ev  Event
}

const externalSeq = 0

// NewController wires a machine to its ports. store may be nil.
func NewController(m *Machine, speech SpeechPort, infer InferencePort, store *session.Store) *Controller {
	return &Controller{
		machine: m,
		speech:  speech,
		infer:   infer,
		store:   store,
		events:  make(chan envelope, 16),
		subs:    make(map[chan Snapshot]struct{}),
	}
}

// Submit injects an external event, such as Start from the HTTP surface.
// Safe for concurrent use.
func (c *Controller) Submit(ev Event) {
	c.events <- envelope{seq: externalSeq, ev: ev}
}

// Subscribe registers a snapshot listener. The returned cancel func must
// be called when the listener goes away. Slow listeners miss snapshots
// rather than stall the loop.
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)
	c.subsMu.Lock()
	c.subs[ch] = struct{}{}
	c.subsMu.Unlock()
	cancel := func() {
		c.subsMu.Lock()
		delete(c.subs, ch)
		c.subsMu.Unlock()
	}
	return ch, cancel
}

// Snapshot returns the most recently published view. Safe for
// concurrent use.
func (c *Controller) Snapshot() Snapshot {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	return c.last
}

// #endregion controller

// #region run

// Run executes the event loop until ctx is cancelled. It boots the
// machine, then serializes every event through it.
func (c *Controller) Run(ctx context.Context) error {
	c.openSession()
	c.publish()
	c.runEffects(ctx, c.machine.Boot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env := <-c.events:
			if env.seq != externalSeq && env.seq != c.seq {
				log.Printf("[CTRL] drop stale result seq=%d current=%d event=%T", env.seq, c.seq, env.ev)
				continue
			}
			c.step(ctx, env.ev)
		}
	}
}

func (c *Controller) step(ctx context.Context, ev Event) {
	before := c.machine.State()
	effects := c.machine.Handle(ev)
	after := c.machine.State()
	if after != before {
		log.Printf("[CTRL] %s -> %s on %T", before, after, ev)
	}
	if u, ok := ev.(Utterance); ok {
		c.logDecision(u.Text, before, after)
	}
	c.persist()
	c.publish()
	c.runEffects(ctx, effects)
}

// logDecision records how an utterance was classified and where it took
// the conversation.
func (c *Controller) logDecision(text string, before, after State) {
	if c.store == nil || c.sessionID == "" {
		return
	}
	mctx := c.machine.Context()
	view := intent.SessionView{
		AnswerCount:    mctx.Profile.ValidAnswerCount(),
		ArchetypeKnown: mctx.Profile.ArchetypeKnown(),
	}
	entry := logging.DecisionEntry{
		SessionID:   c.sessionID,
		Utterance:   text,
		Intent:      string(intent.Classify(text, view)),
		StateBefore: string(before),
		StateAfter:  string(after),
		AnswerCount: mctx.Profile.ValidAnswerCount(),
		Archetype:   mctx.Profile.Archetype,
	}
	if err := logging.LogDecision(c.store.DB(), entry); err != nil {
		log.Printf("[CTRL] log decision failed: %v", err)
	}
}

// #endregion run

// #region effects

// runEffects dispatches each effect on its own goroutine under a fresh
// sequence number. The machine emits at most one async effect per step,
// so bumping once per batch keeps exactly one operation live.
func (c *Controller) runEffects(ctx context.Context, effects []Effect) {
	if len(effects) == 0 {
		return
	}
	c.seq++
	seq := c.seq

	for _, eff := range effects {
		switch e := eff.(type) {
		case Prepare:
			go c.doPrepare(ctx, seq)
		case Speak:
			go c.doSpeak(ctx, seq, e.Text)
		case Listen:
			go c.doListen(ctx, seq)
		case Infer:
			go c.doInfer(ctx, seq, e.Messages, e.Temperature)
		case Analyze:
			go c.doAnalyze(ctx, seq, e.Text)
		}
	}
}

func (c *Controller) post(ctx context.Context, seq uint64, ev Event) {
	select {
	case c.events <- envelope{seq: seq, ev: ev}:
	case <-ctx.Done():
	}
}

// doPrepare retries until the speech channel is up; the conversation
// cannot proceed without it.
func (c *Controller) doPrepare(ctx context.Context, seq uint64) {
	for {
		err := c.speech.Prepare(ctx)
		if err == nil {
			c.post(ctx, seq, SpeechReady{})
			return
		}
		log.Printf("[CTRL] prepare failed: %v", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

// doSpeak always posts SpeechDone: a synthesis failure must not strand
// the machine in Speaking.
func (c *Controller) doSpeak(ctx context.Context, seq uint64, text string) {
	if err := c.speech.Speak(ctx, text); err != nil {
		log.Printf("[CTRL] speak failed: %v", err)
	}
	c.post(ctx, seq, SpeechDone{})
}

// doListen maps a recognition failure to silence so the machine's
// no-input path handles it.
func (c *Controller) doListen(ctx context.Context, seq uint64) {
	res, err := c.speech.Listen(ctx)
	if err != nil {
		log.Printf("[CTRL] listen failed: %v", err)
		c.post(ctx, seq, NoInput{})
		return
	}
	switch {
	case res.Heard:
		c.post(ctx, seq, Utterance{Text: res.Text})
	case res.WindowClosed:
		c.post(ctx, seq, ListenDone{})
	default:
		c.post(ctx, seq, NoInput{})
	}
}

func (c *Controller) doInfer(ctx context.Context, seq uint64, msgs []session.Turn, temperature float64) {
	reply, err := c.infer.Chat(ctx, msgs, temperature)
	if err != nil {
		log.Printf("[CTRL] inference failed: %v", err)
		c.post(ctx, seq, InferenceFailed{})
		return
	}
	c.post(ctx, seq, InferenceDone{Text: reply})
}

// doAnalyze runs the keyword scorer locally. It stays on the async path
// so completions, like any other result, can be superseded by a restart.
func (c *Controller) doAnalyze(ctx context.Context, seq uint64, text string) {
	r := archetype.Score(text)
	log.Printf("[CTRL] analysis: archetype=%q confidence=%s", r.Archetype, r.Confidence)
	c.post(ctx, seq, AnalysisDone{Result: r})
}

// #endregion effects

// #region persistence

func (c *Controller) openSession() {
	if c.store == nil {
		return
	}
	if err := logging.EnsureSchema(c.store.DB()); err != nil {
		log.Printf("[CTRL] decision log schema: %v", err)
	}
	id, err := c.store.CreateSession()
	if err != nil {
		log.Printf("[CTRL] create session failed: %v", err)
		return
	}
	c.sessionID = id
	c.persistedTurns = 0
	c.persistedAnswer = 0
	c.analysisSaved = false
	log.Printf("[CTRL] session %s opened", c.sessionID)
}

// persist mirrors the live context into the store. A shrunken turn log
// means the context was reset, which opens a fresh session record.
func (c *Controller) persist() {
	if c.store == nil || c.sessionID == "" {
		return
	}
	ctx := c.machine.Context()

	if len(ctx.TurnLog) < c.persistedTurns {
		c.openSession()
	}
	for i := c.persistedTurns; i < len(ctx.TurnLog); i++ {
		t := ctx.TurnLog[i]
		if err := c.store.AppendTurn(c.sessionID, i, t.Role, t.Text); err != nil {
			log.Printf("[CTRL] append turn failed: %v", err)
		}
	}
	c.persistedTurns = len(ctx.TurnLog)

	for i := c.persistedAnswer; i < len(ctx.Profile.Answers); i++ {
		a := ctx.Profile.Answers[i]
		if err := c.store.RecordAnswer(c.sessionID, a.Question, a.Text); err != nil {
			log.Printf("[CTRL] record answer failed: %v", err)
		}
	}
	c.persistedAnswer = len(ctx.Profile.Answers)

	if !c.analysisSaved && ctx.Profile.ArchetypeKnown() {
		if err := c.store.SaveAnalysis(c.sessionID, &ctx.Profile); err != nil {
			log.Printf("[CTRL] save analysis failed: %v", err)
		} else {
			c.analysisSaved = true
		}
	}
}

// #endregion persistence

// #region snapshot-publish

func (c *Controller) snapshot() Snapshot {
	ctx := c.machine.Context()
	return Snapshot{
		State:          c.machine.State(),
		SessionID:      c.sessionID,
		TurnCount:      len(ctx.TurnLog),
		AnswerCount:    ctx.Profile.ValidAnswerCount(),
		Archetype:      ctx.Profile.Archetype,
		MBTIType:       ctx.Profile.MBTIType,
		Confidence:     ctx.Profile.Confidence,
		Temperature:    ctx.SamplingTemperature,
		NoInputStreak:  ctx.NoInputStreak,
		LastSpokenText: ctx.LastSpokenText,
	}
}

func (c *Controller) publish() {
	snap := c.snapshot()
	c.subsMu.Lock()
	c.last = snap
	for ch := range c.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	c.subsMu.Unlock()
}

// #endregion snapshot-publish
