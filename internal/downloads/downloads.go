// Package downloads executes fetcher invocations and retries classified
// failures with a narrower parameter set.
package downloads

import (
	"context"
	"fmt"

	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"
)

// Result is the terminal outcome of one orchestrated download.
type Result struct {
	URL        string
	OutputPath string
	Attempts   int
	Category   Category // last classified failure, CategoryNone when clean
	Skipped    bool     // content unavailable, not a hard failure
	Err        error
}

// Succeeded reports whether the chain ended in a completed invocation.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// runAttempt is swapped out by tests.
var runAttempt = execute

// Run executes a spec and, on classified failure, applies the owning
// category's parameter patch and retries exactly once. A failed
// post-processing retry escalates to one final bare-parameter attempt.
// Unclassified failures are terminal immediately.
func Run(ctx context.Context, spec models.InvocationSpec) Result {
	res := Result{URL: spec.URL}

	attempt := runAttempt(ctx, spec)
	res.Attempts++
	if attempt.err == nil {
		res.OutputPath = attempt.path
		return res
	}
	if ctx.Err() != nil {
		res.Err = ctx.Err()
		return res
	}

	cat := Classify(attempt.output)
	res.Category = cat

	if cat == CategoryNone {
		res.Err = fmt.Errorf("download failed with unrecognized output: %w", attempt.err)
		return res
	}
	if cat == CategorySubtitles && spec.Kind == consts.KindSubsOnly {
		// Nothing left to fetch once the subtitle flags are dropped.
		res.Skipped = true
		res.Err = fmt.Errorf("subtitles unavailable for %q: %w", spec.URL, attempt.err)
		return res
	}

	logging.W("Download failed for %q (%s), retrying with adjusted parameters", spec.URL, cat)

	attempt = runAttempt(ctx, Patch(cat, spec))
	res.Attempts++
	if attempt.err == nil {
		res.OutputPath = attempt.path
		return res
	}
	if ctx.Err() != nil {
		res.Err = ctx.Err()
		return res
	}

	if cat != CategoryPostProcess {
		res.Err = fmt.Errorf("retry failed for %q (%s): %w", spec.URL, cat, attempt.err)
		return res
	}

	logging.W("Post-processing retry failed for %q, dropping to bare parameters", spec.URL)

	attempt = runAttempt(ctx, Bare(spec))
	res.Attempts++
	if attempt.err == nil {
		res.OutputPath = attempt.path
		return res
	}
	res.Err = fmt.Errorf("bare fallback failed for %q: %w", spec.URL, attempt.err)
	return res
}
