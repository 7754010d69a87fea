// Command vanityctl is the CLI for vanity debugging and maintenance.
//
// Usage:
//
//	vanityctl                  Show help
//	vanityctl stats            Run history statistics
//	vanityctl runs             List recent runs
//	vanityctl runs -show <id>  List the confirmed candidates of a run
//	vanityctl encode <n>       Encode an ordinal to its identifier
//	vanityctl decode <s>       Decode an identifier to its ordinal
package main

import (
	"fmt"
	"os"
)

const usage = `vanityctl - vanity debug & maintenance CLI

Usage:
  vanityctl <command> [flags]

Commands:
  stats       Run history statistics
  runs        List recent runs and their confirmed candidates
  encode      Encode an ordinal (1-based) to its identifier
  decode      Decode an identifier back to its ordinal

Run 'vanityctl <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "stats":
		runStats()
	case "runs":
		runRuns()
	case "encode":
		runEncode()
	case "decode":
		runDecode()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "vanityctl: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
