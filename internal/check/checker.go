// Package check verifies candidate availability against the remote profile
// service.
//
// One GET per candidate, fanned out across a bounded worker pool that shares
// a single connection-pooling HTTP client. The policy is best-effort: a
// candidate whose request fails is dropped from the results and never
// retried, and cancelling the run keeps whatever has been confirmed so far.
// Failures are counted in Stats so the policy is observable rather than
// silent.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abelbrown/vanity/internal/logging"
	"github.com/abelbrown/vanity/internal/results"
)

// DefaultBaseURL is the profile service the checker talks to.
const DefaultBaseURL = "https://steamcommunity.com"

// Availability markers, matched case-sensitively against the response body.
// A candidate is taken: the profile page renders with a return link. A body
// carrying the removal notice means the name is gone for good, not free.
const (
	availableMarker = `<p class="returnLink">`
	removedMarker   = `This group has been removed`
)

const (
	defaultTimeout = 30 * time.Second
	defaultWorkers = 16
)

// ErrBaseURL is returned by New for a malformed base URL.
var ErrBaseURL = errors.New("check: invalid base URL")

// Observer receives each candidate as it is dispatched, before its outcome
// is known.
type Observer func(candidate string)

// Config tunes a Checker. The zero value selects the defaults.
type Config struct {
	BaseURL string        // profile service root; default DefaultBaseURL
	Timeout time.Duration // per-request timeout; default 30s
	Workers int           // max in-flight requests; default 16
	RPS     float64       // request pacing; 0 disables the limiter
	Echo    Observer      // optional dispatch observer
}

// Stats summarizes one checking run.
type Stats struct {
	Dispatched int64 // requests issued
	Confirmed  int64 // candidates that passed the availability predicate
	Failed     int64 // requests swallowed under the best-effort policy
}

// Checker verifies candidates. Safe for sequential reuse; one Check runs at
// a time per ResultSet but the Checker itself holds no per-run state.
type Checker struct {
	base    *url.URL
	client  *http.Client
	workers int
	limiter *rate.Limiter
	echo    Observer
}

// New creates a Checker. Fails only on a malformed base URL; everything else
// falls back to defaults.
func New(cfg Config) (*Checker, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURL, baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &Checker{
		base:    base,
		client:  &http.Client{Timeout: timeout},
		workers: workers,
		limiter: limiter,
		echo:    cfg.Echo,
	}, nil
}

// Check verifies every candidate in the sequence against the endpoint and
// returns the set of confirmed-available ones.
//
// Candidates complete in no particular order. Cancelling ctx stops further
// dispatch, lets the context cut any in-flight requests, and returns the
// partial result set accumulated so far; Check never returns an error.
func (c *Checker) Check(ctx context.Context, candidates iter.Seq[string], endpoint string) (*results.Set, Stats) {
	set := results.NewSet()
	var dispatched, confirmed, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(c.workers)

	for candidate := range candidates {
		if ctx.Err() != nil {
			break
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				break
			}
		}
		if c.echo != nil {
			c.echo(candidate)
		}

		dispatched.Add(1)
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			available, err := c.checkOne(ctx, endpoint, candidate)
			if err != nil {
				// Best-effort: exclude the candidate, count it, move on.
				failed.Add(1)
				logging.Debug("Check failed", "candidate", candidate, "error", err)
				return nil
			}
			if available {
				set.Add(candidate)
				confirmed.Add(1)
			}
			return nil
		})
	}

	_ = g.Wait()

	stats := Stats{
		Dispatched: dispatched.Load(),
		Confirmed:  confirmed.Load(),
		Failed:     failed.Load(),
	}
	logging.Info("Check run finished",
		"endpoint", endpoint,
		"dispatched", stats.Dispatched,
		"confirmed", stats.Confirmed,
		"failed", stats.Failed,
		"interrupted", ctx.Err() != nil)
	return set, stats
}

// checkOne fetches one candidate's page and applies the availability
// predicate to the body. Transport and read errors bubble up to be counted;
// HTTP status is deliberately ignored - only the body decides.
func (c *Checker) checkOne(ctx context.Context, endpoint, candidate string) (bool, error) {
	u := c.base.JoinPath(endpoint, candidate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "vanity/0.1 (+https://github.com/abelbrown/vanity)")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read body for %s: %w", u, err)
	}

	return Available(string(body)), nil
}

// Available reports whether a response body marks a candidate as free to
// claim: non-empty, carries the return-link marker, and does not carry the
// removal notice.
func Available(body string) bool {
	return body != "" &&
		strings.Contains(body, availableMarker) &&
		!strings.Contains(body, removedMarker)
}
