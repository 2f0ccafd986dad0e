package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lealimarco/the-psychologist-dog/internal/config"
	"github.com/lealimarco/the-psychologist-dog/internal/dialogue"
	"github.com/lealimarco/the-psychologist-dog/internal/inference"
	"github.com/lealimarco/the-psychologist-dog/internal/server"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
	"github.com/lealimarco/the-psychologist-dog/internal/speech"
	"github.com/lealimarco/the-psychologist-dog/internal/synth"
)

// #region main
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] config: %v", err)
	}

	store, err := session.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("[MAIN] open store: %v", err)
	}
	defer store.Close()

	inferClient, err := inference.NewClient(cfg.InferenceAddr, cfg.Model, cfg.TopK)
	if err != nil {
		log.Fatalf("[MAIN] connect inference at %s: %v", cfg.InferenceAddr, err)
	}
	defer inferClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	speechClient, err := speech.NewClient(ctx, cfg.SpeechAddr)
	if err != nil {
		log.Fatalf("[MAIN] connect speech at %s: %v", cfg.SpeechAddr, err)
	}
	defer speechClient.Close()

	machine := dialogue.NewMachine(session.New(synth.SystemPrompt))
	ctrl := dialogue.NewController(machine, speechClient, inferClient, store)

	go ctrl.Run(ctx)
	if cfg.AutoStart {
		go autoStart(ctx, ctrl)
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.NewServer(ctrl, store).Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // streaming endpoints hold the connection open
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("[MAIN] listening on %s (speech=%s inference=%s db=%s)",
			cfg.HTTPAddr, cfg.SpeechAddr, cfg.InferenceAddr, cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[MAIN] server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()
	log.Println("[MAIN] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[MAIN] forced shutdown: %v", err)
	}
}

// #endregion main

// #region auto-start

// autoStart waits for the speech channel to come up, then begins the
// conversation without an HTTP command.
func autoStart(ctx context.Context, ctrl *dialogue.Controller) {
	snaps, cancel := ctrl.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-snaps:
			if snap.State == dialogue.StateIdle {
				ctrl.Submit(dialogue.Start{})
				return
			}
		}
	}
}

// #endregion auto-start
