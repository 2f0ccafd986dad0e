// fixture-export turns a recorded session into a deterministic replay
// fixture: each classified utterance becomes a scripted step, and every
// completion the machine requested is answered with inference-failed so
// the replay exercises the deterministic fallback path.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lealimarco/the-psychologist-dog/internal/logging"
	"github.com/lealimarco/the-psychologist-dog/internal/replay"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to dialogue.db")
	sessionID := flag.String("session", "", "session to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *sessionID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/dialogue.db --session id --out path/to/fixture.json")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// inferenceStates are the states whose entry requests a completion.
var inferenceStates = map[string]bool{
	"running-inference":          true,
	"confirming-quit":            true,
	"confirming-restart":         true,
	"generating-recommendations": true,
	"discussing-archetype":       true,
}

// stableStates are states a replay observes right after a scripted
// utterance. Transitional states such as speaking or the analysis
// states resolve synchronously during replay, so expectations pinned
// to them would never hold.
var stableStates = map[string]bool{
	"idle":                       true,
	"listening":                  true,
	"listening-post-analysis":    true,
	"running-inference":          true,
	"confirming-quit":            true,
	"confirming-restart":         true,
	"generating-recommendations": true,
	"discussing-archetype":       true,
}

func run(dbPath, sessionID, outPath string) error {
	store, err := session.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rec, err := store.GetSession(sessionID)
	if err != nil {
		return err
	}
	decisions, err := logging.ListDecisions(store.DB(), sessionID)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		return fmt.Errorf("session %s has no recorded decisions", sessionID)
	}

	f := buildFixture(rec, decisions)

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d steps (%d expectations) to %s\n", len(f.Steps), len(f.Expected), outPath)
	return nil
}

func buildFixture(rec session.SessionRecord, decisions []logging.DecisionEntry) *replay.Fixture {
	f := &replay.Fixture{
		Description: fmt.Sprintf("exported from session %s", rec.SessionID),
	}
	for _, d := range decisions {
		f.Steps = append(f.Steps, replay.Step{Kind: replay.StepUtterance, Text: d.Utterance})
		if stableStates[d.StateAfter] {
			f.Expected = append(f.Expected, replay.Expectation{
				Step:  len(f.Steps) - 1,
				State: d.StateAfter,
			})
		}
		if inferenceStates[d.StateAfter] {
			f.Steps = append(f.Steps, replay.Step{Kind: replay.StepInferenceFailed})
		}
	}
	return f
}

// #endregion export
