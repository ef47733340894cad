// Package guardrails holds time budget helpers for the loader
package guardrails

import (
	"context"
	"time"
)

// Timeouts bounds the work of a run. Zero values mean no extra limit
type Timeouts struct {
	// Run caps the whole ingest
	Run time.Duration

	// Question caps one question graph and its transaction
	Question time.Duration
}

// ForRun returns a context bounded by Run and the parent deadline
func ForRun(parent context.Context, t Timeouts) (context.Context, context.CancelFunc) {
	return withChildTimeout(parent, t.Run)
}

// ForQuestion returns a context bounded by Question and the parent deadline
func ForQuestion(parent context.Context, t Timeouts) (context.Context, context.CancelFunc) {
	return withChildTimeout(parent, t.Question)
}

// Remaining returns the time until the deadline on ctx, or zero when none is set or it passed
func Remaining(ctx context.Context) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 {
			return d
		}
	}
	return 0
}

// withChildTimeout picks the tighter of d and the parent remainder; it never extends the parent
func withChildTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	if rem := Remaining(parent); rem > 0 && rem < d {
		return context.WithTimeout(parent, rem)
	}
	return context.WithTimeout(parent, d)
}
