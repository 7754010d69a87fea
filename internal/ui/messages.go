package ui

import "github.com/abelbrown/vanity/internal/app"

// GenerateDone is sent when candidate generation finishes.
type GenerateDone struct {
	Candidates []string
	Source     string // app.SourceRange or app.SourceFile
	Err        error
}

// CheckDone is sent when a checking run finishes, including interrupted
// runs: the outcome then carries the partial result set.
type CheckDone struct {
	Outcome *app.RunOutcome
	Err     error
}
