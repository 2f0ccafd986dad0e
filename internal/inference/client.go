// Package inference wraps the gRPC connection to the language-model
// service. Every failure mode collapses into ErrUnavailable so the
// dialogue layer has exactly one fallback path.
package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/lealimarco/the-psychologist-dog/gen/dialoguepb"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// ErrUnavailable is returned for any Chat failure: connection errors,
// RPC errors, and empty completions alike.
var ErrUnavailable = errors.New("inference unavailable")

// #region client-struct

// Client wraps the gRPC connection to the inference service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.InferenceServiceClient
	model  string
	topK   int
}

// #endregion client-struct

// #region constructor

// NewClient connects to the inference gRPC server.
func NewClient(addr, model string, topK int) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewInferenceServiceClient(conn),
		model:  model,
		topK:   topK,
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.InferenceServiceClient, model string, topK int) *Client {
	return &Client{client: svc, model: model, topK: topK}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region chat

// Chat sends a message snapshot and returns the trimmed completion.
func (c *Client) Chat(ctx context.Context, msgs []session.Turn, temperature float64) (string, error) {
	req := &pb.ChatRequest{
		Messages:    make([]*pb.ChatMessage, 0, len(msgs)),
		Model:       c.model,
		Temperature: float32(temperature),
		TopK:        int32(c.topK),
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, &pb.ChatMessage{
			Role:    string(m.Role),
			Content: m.Text,
		})
	}

	resp, err := c.client.Chat(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: chat rpc: %v", ErrUnavailable, err)
	}
	text := strings.TrimSpace(resp.GetText())
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return text, nil
}

// #endregion chat
