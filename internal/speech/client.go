// Package speech adapts the speech sidecar's bidirectional gRPC stream
// to the blocking port the dialogue controller expects. One command is
// in flight at a time; the sidecar answers each command with exactly one
// terminal event.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/lealimarco/the-psychologist-dog/gen/dialoguepb"
	"github.com/lealimarco/the-psychologist-dog/internal/dialogue"
)

// #region wire-kinds

const (
	CommandPrepare = "PREPARE"
	CommandListen  = "LISTEN"
	CommandSpeak   = "SPEAK"

	EventReady          = "READY_FOR_USE"
	EventUtterance      = "UTTERANCE_RECOGNIZED"
	EventNoInput        = "NO_INPUT_TIMEOUT"
	EventSpeechComplete = "SPEECH_PLAYBACK_COMPLETE"
	EventListenComplete = "LISTENING_WINDOW_COMPLETE"
)

// #endregion wire-kinds

// ErrStreamClosed is returned once the session stream has gone away.
var ErrStreamClosed = errors.New("speech stream closed")

// sessionStream is the subset of the generated stream used here.
type sessionStream interface {
	Send(*pb.SpeechCommand) error
	Recv() (*pb.SpeechEvent, error)
}

// #region client-struct

// Client drives one speech session stream.
type Client struct {
	conn   *grpc.ClientConn
	stream sessionStream

	mu     sync.Mutex // one command in flight
	events chan *pb.SpeechEvent
	done   chan struct{}
}

// #endregion client-struct

// #region constructor

// NewClient dials the sidecar and opens the session stream.
func NewClient(ctx context.Context, addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	stream, err := pb.NewSpeechServiceClient(conn).Session(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open session stream: %w", err)
	}
	c := newClient(stream)
	c.conn = conn
	return c, nil
}

// NewClientWithStream wraps an injected stream. Used for testing.
func NewClientWithStream(stream sessionStream) *Client {
	return newClient(stream)
}

func newClient(stream sessionStream) *Client {
	c := &Client{
		stream: stream,
		events: make(chan *pb.SpeechEvent, 4),
		done:   make(chan struct{}),
	}
	go c.receive()
	return c
}

// #endregion constructor

// #region receive

// receive pumps stream events into the channel until the stream ends.
func (c *Client) receive() {
	defer close(c.done)
	for {
		ev, err := c.stream.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("[SPEECH] stream recv: %v", err)
			}
			return
		}
		c.events <- ev
	}
}

// #endregion receive

// #region port

// Prepare asks the sidecar to warm up capture and synthesis.
func (c *Client) Prepare(ctx context.Context) error {
	ev, err := c.roundTrip(ctx, &pb.SpeechCommand{Kind: CommandPrepare})
	if err != nil {
		return err
	}
	if ev.GetKind() != EventReady {
		return fmt.Errorf("prepare: unexpected event %q", ev.GetKind())
	}
	return nil
}

// Speak synthesizes text and blocks until playback completes.
func (c *Client) Speak(ctx context.Context, text string) error {
	ev, err := c.roundTrip(ctx, &pb.SpeechCommand{Kind: CommandSpeak, Text: text})
	if err != nil {
		return err
	}
	if ev.GetKind() != EventSpeechComplete {
		return fmt.Errorf("speak: unexpected event %q", ev.GetKind())
	}
	return nil
}

// Listen opens one recognition window and blocks until it resolves.
func (c *Client) Listen(ctx context.Context) (dialogue.ListenResult, error) {
	ev, err := c.roundTrip(ctx, &pb.SpeechCommand{Kind: CommandListen})
	if err != nil {
		return dialogue.ListenResult{}, err
	}
	switch ev.GetKind() {
	case EventUtterance:
		return dialogue.ListenResult{Text: ev.GetText(), Heard: true}, nil
	case EventNoInput:
		return dialogue.ListenResult{}, nil
	case EventListenComplete:
		return dialogue.ListenResult{WindowClosed: true}, nil
	default:
		return dialogue.ListenResult{}, fmt.Errorf("listen: unexpected event %q", ev.GetKind())
	}
}

// #endregion port

// #region round-trip

// roundTrip sends one command and waits for its terminal event.
func (c *Client) roundTrip(ctx context.Context, cmd *pb.SpeechCommand) (*pb.SpeechEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.stream.Send(cmd); err != nil {
		return nil, fmt.Errorf("send %s: %w", cmd.GetKind(), err)
	}
	select {
	case ev := <-c.events:
		return ev, nil
	case <-c.done:
		return nil, ErrStreamClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// #endregion round-trip

// #region close

// Close tears down the gRPC connection, if this client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close
