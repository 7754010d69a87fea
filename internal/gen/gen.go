// Package gen produces the sequence of candidate identifiers to check.
//
// Two modes exist: Range enumerates every string of the configured lengths
// through the bijective codec without materializing the space up front, and
// FromFile loads a pre-existing newline-delimited list. Each call returns a
// fresh sequence; nothing accumulates across calls.
package gen

import (
	"errors"
	"fmt"
	"iter"
	"math/big"
	"regexp"
	"strings"

	"github.com/abelbrown/vanity/internal/listfile"
	"github.com/abelbrown/vanity/internal/logging"
	"github.com/abelbrown/vanity/internal/numeral"
)

// PatternAny matches every candidate.
const PatternAny = ".*"

// ErrBounds is returned by Range for invalid length bounds.
var ErrBounds = errors.New("gen: invalid length bounds")

// Observer receives each accepted candidate as it is produced.
type Observer func(candidate string)

// Source enumerates candidates over a fixed alphabet.
type Source struct {
	alphabet *numeral.Alphabet
}

// New creates a Source. A nil alphabet selects the default one.
func New(a *numeral.Alphabet) *Source {
	if a == nil {
		a = numeral.Default()
	}
	return &Source{alphabet: a}
}

// Alphabet returns the alphabet the source enumerates over.
func (s *Source) Alphabet() *numeral.Alphabet {
	return s.alphabet
}

// Range returns the lazy sequence of all candidates with length in
// [minLen, maxLen] that the pattern matches anywhere (search semantics,
// not full-match). An empty pattern matches everything. A pattern that
// fails to compile yields an empty sequence rather than an error; that
// mirrors the long-standing behavior downstream tooling relies on.
//
// Fails with ErrBounds when minLen < 1 or maxLen < minLen.
func (s *Source) Range(minLen, maxLen int, pattern string, echo Observer) (iter.Seq[string], error) {
	if minLen < 1 || maxLen < minLen {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrBounds, minLen, maxLen)
	}

	if pattern == "" {
		pattern = PatternAny
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		logging.Warn("Pattern failed to compile, producing no candidates",
			"pattern", pattern, "error", err)
		return func(yield func(string) bool) {}, nil
	}

	// The shortest candidate is minLen repetitions of the first symbol, the
	// longest is maxLen repetitions of the last; with no zero symbol those
	// bound a contiguous index range covering every length in between.
	// The upper index is itself a valid candidate of length maxLen, so the
	// walk is inclusive on both ends.
	left := s.alphabet.Decode(strings.Repeat(s.alphabet.First(), minLen))
	right := s.alphabet.Decode(strings.Repeat(s.alphabet.Last(), maxLen))

	return func(yield func(string) bool) {
		one := big.NewInt(1)
		for i := new(big.Int).Set(left); i.Cmp(right) <= 0; i.Add(i, one) {
			candidate, err := s.alphabet.Encode(i)
			if err != nil {
				// Unreachable: left >= 1 by construction.
				return
			}
			if !re.MatchString(candidate) {
				continue
			}
			if echo != nil {
				echo(candidate)
			}
			if !yield(candidate) {
				return
			}
		}
	}, nil
}

// FromFile loads candidates from a newline-delimited list. The file is
// created empty when missing and blank lines are dropped. No pattern
// filtering applies in this mode.
func (s *Source) FromFile(path string) ([]string, error) {
	lines, err := listfile.Read(path)
	if err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	logging.Info("Loaded candidate list", "path", path, "count", len(lines))
	return lines, nil
}
