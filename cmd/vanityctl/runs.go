package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func runRuns() {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	limit := fs.Int("n", 20, "Number of runs to list")
	show := fs.Int64("show", 0, "List the confirmed candidates of the given run ID")
	fs.Parse(os.Args[1:])

	st := openDB()
	defer st.Close()

	if *show > 0 {
		confirmed, err := st.Confirmed(*show)
		if err != nil {
			log.Fatalf("failed to read run %d: %v", *show, err)
		}
		for _, c := range confirmed {
			fmt.Println(c)
		}
		return
	}

	runs, err := st.RecentRuns(*limit)
	if err != nil {
		log.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return
	}

	fmt.Printf("%-5s %-20s %-8s %-6s %-9s %-9s %-9s %s\n",
		"ID", "Started", "Endpoint", "Source", "Generated", "Confirmed", "Failed", "Note")
	for _, r := range runs {
		note := ""
		if r.Interrupted {
			note = "interrupted"
		}
		fmt.Printf("%-5d %-20s %-8s %-6s %-9d %-9d %-9d %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"),
			r.Endpoint, r.Source, r.Generated, r.Confirmed, r.Failed, note)
	}
}
