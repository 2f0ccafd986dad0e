package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lealimarco/the-psychologist-dog/internal/logging"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to dialogue.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/dialogue.db [--last N] [--session id] [--json]")
		os.Exit(2)
	}

	store, err := session.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		err = runDetailMode(store, *sessionID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *session.Store, last int, jsonOut bool) error {
	recs, err := store.ListSessions(last)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	fmt.Printf("%-38s| %-22s| %-16s| %-6s| %s\n", "Session", "Started", "Archetype", "MBTI", "Confidence")
	for _, rec := range recs {
		archetype := rec.Archetype
		if archetype == "" {
			archetype = "-"
		}
		mbti := rec.MBTIType
		if mbti == "" {
			mbti = "-"
		}
		fmt.Printf("%-38s| %-22s| %-16s| %-6s| %s\n",
			rec.SessionID, rec.StartedAt.Format(time.RFC3339), archetype, mbti, rec.Confidence)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type sessionDetail struct {
	Session   session.SessionRecord   `json:"session"`
	Turns     []session.TurnRecord    `json:"turns"`
	Decisions []logging.DecisionEntry `json:"decisions,omitempty"`
}

func runDetailMode(store *session.Store, sessionID string, jsonOut bool) error {
	rec, err := store.GetSession(sessionID)
	if err != nil {
		return err
	}
	turns, err := store.ListTurns(sessionID)
	if err != nil {
		return err
	}
	// Older databases may predate the decision log.
	decisions, err := logging.ListDecisions(store.DB(), sessionID)
	if err != nil {
		decisions = nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessionDetail{Session: rec, Turns: turns, Decisions: decisions})
	}

	fmt.Printf("Session %s, started %s\n", rec.SessionID, rec.StartedAt.Format(time.RFC3339))
	if rec.Archetype != "" {
		fmt.Printf("Analysis: %s (%s), confidence %s, traits %v\n",
			rec.Archetype, rec.MBTIType, rec.Confidence, rec.Traits)
	}

	fmt.Println("\nTurns:")
	for _, t := range turns {
		fmt.Printf("  %3d %-9s %s\n", t.Seq, t.Role, t.Text)
	}

	if len(decisions) > 0 {
		fmt.Println("\nDecisions:")
		for _, d := range decisions {
			fmt.Printf("  %-33s %-25s -> %s\n", d.Intent, d.StateBefore, d.StateAfter)
		}
	}
	return nil
}

// #endregion detail-mode
