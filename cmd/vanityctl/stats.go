package main

import (
	"fmt"
	"log"
	"time"

	"github.com/abelbrown/vanity/internal/config"
)

func runStats() {
	st := openDB()
	defer st.Close()

	runs, confirmed, err := st.Totals()
	if err != nil {
		log.Fatalf("failed to read totals: %v", err)
	}

	fmt.Printf("Data directory:        %s\n", config.DataDir())
	fmt.Printf("Recorded runs:         %d\n", runs)
	fmt.Printf("Distinct confirmed:    %d\n", confirmed)

	recent, err := st.RecentRuns(1)
	if err != nil || len(recent) == 0 {
		return
	}
	last := recent[0]
	fmt.Printf("\nLast run (#%d):\n", last.ID)
	fmt.Printf("  Endpoint:    /%s/\n", last.Endpoint)
	fmt.Printf("  Source:      %s\n", last.Source)
	fmt.Printf("  Generated:   %d\n", last.Generated)
	fmt.Printf("  Dispatched:  %d\n", last.Dispatched)
	fmt.Printf("  Confirmed:   %d\n", last.Confirmed)
	fmt.Printf("  Failed:      %d\n", last.Failed)
	if last.Interrupted {
		fmt.Printf("  Interrupted: yes\n")
	}
	fmt.Printf("  Duration:    %s\n", last.FinishedAt.Sub(last.StartedAt).Round(time.Millisecond))
}
