// Package batch extracts many pages concurrently. It coordinates loading,
// per-domain rate limiting, retries and extraction, and reports progress
// as pages complete.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/resumer"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages loaded at once.
const DefaultConcurrency = 3

// Runner loads and extracts a list of pages.
type Runner struct {
	Loader       resumer.Loader
	Extractor    resumer.Extractor
	RateLimiter  resumer.DomainLimiter
	TokenCounter resumer.TokenCounter
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of extracting a single page.
type Result struct {
	URL     string
	Extract *resumer.ExtractResult
	Hash    string
	Tokens  int
	Err     error
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type pageResult struct {
	position int
	result   Result
}

// Run extracts every URL and returns one Result per URL in input order.
// A page whose content is insufficient is reported as failed with
// ENOTFOUND. The progress callback, if provided, is called from the
// calling goroutine.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(urls))
	total := len(urls)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- pageResult{position: i, result: r.process(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, len(urls))
	for pr := range resultCh {
		completed.Add(1)
		results[pr.position] = pr.result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       pr.result.URL,
		}
		if pr.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = pr.result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results, ctx.Err()
}

// process loads and extracts a single URL.
func (r *Runner) process(ctx context.Context, rawURL string) Result {
	result := Result{URL: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		result.Err = resumer.Errorf(resumer.EINVALID, "invalid URL %q", rawURL)
		return result
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.Err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	doc, err := LoadWithRetry(ctx, r.Loader, rawURL, delays)
	if err != nil {
		result.Err = err
		return result
	}

	extracted := r.Extractor.Extract(doc)
	result.Extract = extracted
	if resumer.IsInsufficient(extracted.Content) {
		result.Err = resumer.Errorf(resumer.ENOTFOUND, "no content could be extracted from this page")
		return result
	}

	result.Hash = ComputeHash(extracted.Content)
	if r.TokenCounter != nil {
		if tokens, err := r.TokenCounter.CountTokens(ctx, extracted.Content); err == nil {
			result.Tokens = tokens
		}
	}

	return result
}
