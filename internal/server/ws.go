package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// #region state-stream

// handleStateStream upgrades to WebSocket and pushes one JSON snapshot
// per conversation step, starting with the current state.
func (s *Server) handleStateStream(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[HTTP] websocket accept: %v", err)
		return
	}
	defer ws.Close(websocket.StatusNormalClosure, "stream ended")

	// Write-only stream; CloseRead surfaces the client hanging up.
	ctx := ws.CloseRead(r.Context())
	snaps, cancel := s.ctrl.Subscribe()
	defer cancel()

	if err := writeSnapshot(ctx, ws, s.ctrl.Snapshot()); err != nil {
		return
	}

	keepalive := time.NewTicker(10 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-snaps:
			if err := writeSnapshot(ctx, ws, snap); err != nil {
				return
			}
		case <-keepalive.C:
			if err := ws.Ping(ctx); err != nil {
				return
			}
		}
	}
}

func writeSnapshot(ctx context.Context, ws *websocket.Conn, v interface{}) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return wsjson.Write(writeCtx, ws, v)
}

// #endregion state-stream
