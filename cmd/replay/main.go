package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lealimarco/the-psychologist-dog/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to conversation fixture JSON")
	verbose := flag.Bool("v", false, "print every step, not just mismatches")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/conversation.json [-v]")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath, *verbose))
}

// #endregion main

// #region run

func run(path string, verbose bool) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}
	if verbose {
		printSteps(results)
	}

	mismatches := replay.Check(f, results)
	for _, m := range mismatches {
		fmt.Printf("MISMATCH %s\n", m)
	}

	fmt.Printf("\nSummary: %d steps (%d utterances, %d silences), final state %s, %d answers",
		summary.TotalSteps, summary.Utterances, summary.Silences, summary.FinalState, summary.AnswerCount)
	if summary.Archetype != "" {
		fmt.Printf(", archetype %s", summary.Archetype)
	}
	fmt.Printf("\n%d expectations, %d mismatches\n", len(f.Expected), len(mismatches))

	if len(mismatches) > 0 {
		return 1
	}
	return 0
}

func printSteps(results []replay.StepResult) {
	fmt.Printf("%-5s| %-17s| %-25s| %s\n", "Step", "Kind", "State", "Reply")
	fmt.Printf("%-5s+%-18s+%-26s+%s\n", "-----", "------------------", "--------------------------", "------")
	for _, r := range results {
		reply := r.LastReply
		if len(reply) > 60 {
			reply = reply[:57] + "..."
		}
		fmt.Printf("%-5d| %-17s| %-25s| %s\n", r.Step, r.Kind, r.State, reply)
	}
	fmt.Println()
}

// #endregion run
