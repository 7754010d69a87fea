// Command vanity checks which short Steam community identifiers are still
// unclaimed. Without arguments it opens the interactive menu UI; the run
// subcommand does a single generate-and-check pass without a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/vanity/internal/app"
	"github.com/abelbrown/vanity/internal/config"
	"github.com/abelbrown/vanity/internal/logging"
	"github.com/abelbrown/vanity/internal/store"
	"github.com/abelbrown/vanity/internal/ui"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer logging.Close()

	if len(os.Args) > 1 && os.Args[1] == "run" {
		os.Args = os.Args[1:]
		runHeadless()
		return
	}

	runUI()
}

// openStore opens the run history database under the data directory.
func openStore() *store.Store {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	st, err := store.Open(filepath.Join(dir, "vanity.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return st
}

func runUI() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st := openStore()
	defer st.Close()

	program := tea.NewProgram(ui.NewApp(cfg, app.NewRunner(cfg, st)), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Error running program: %v", err)
	}
}

func runHeadless() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fromFile := fs.Bool("file", false, "Check candidates from the input file instead of generating a range")
	pattern := fs.String("pattern", "", "Regular expression filter for generated candidates")
	minLen := fs.Int("min", 0, "Minimum candidate length")
	maxLen := fs.Int("max", 0, "Maximum candidate length")
	endpoint := fs.String("endpoint", "", "Community endpoint to check (id or groups)")
	quiet := fs.Bool("quiet", false, "Suppress per-candidate progress output")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *pattern != "" {
		cfg.Pattern = *pattern
	}
	if *minLen > 0 {
		cfg.MinLen = *minLen
	}
	if *maxLen > 0 {
		cfg.MaxLen = *maxLen
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}
	cfg.Normalize()

	st := openStore()
	defer st.Close()

	runner := app.NewRunner(cfg, st)

	var echo func(string)
	if !*quiet {
		echo = func(c string) { fmt.Printf("@ %s\n", c) }
	}

	var candidates []string
	source := app.SourceRange
	if *fromFile {
		source = app.SourceFile
		candidates, err = runner.GenerateFile()
	} else {
		candidates, err = runner.GenerateRange(echo)
	}
	if err != nil {
		log.Fatalf("Failed to generate candidates: %v", err)
	}
	fmt.Printf("Checking %d candidates against /%s/\n", len(candidates), cfg.Endpoint)

	// Ctrl-C stops dispatch but keeps whatever was already confirmed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := runner.Check(ctx, candidates, source, echo)
	if err != nil {
		log.Fatalf("Check failed: %v", err)
	}

	if outcome.Interrupted {
		fmt.Println("Interrupted, keeping partial results")
	}
	fmt.Printf("%d available (%d checked, %d failed), saved to %s\n",
		len(outcome.Confirmed), outcome.Stats.Dispatched, outcome.Stats.Failed, outcome.OutputPath)
}
