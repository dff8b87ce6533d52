package scrape

import (
	"context"
	"log"
	"time"

	"skijobs-engine/internal/domain"
)

// withDeadline races op against d and returns nil if the timer wins. The
// losing op is abandoned, not joined: its context is cancelled so
// well-behaved fetches stop early, but nothing waits for it, so a wedged
// headless browser can't stall the aggregate. The adapter still owns
// releasing its own resources on that path.
func withDeadline(parent context.Context, d time.Duration, name string, op func(context.Context) []domain.Posting) []domain.Posting {
	ctx, cancel := context.WithTimeout(parent, d)

	done := make(chan []domain.Posting, 1)
	go func() {
		defer cancel()
		done <- op(ctx)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		// the op may have finished right as the timer fired; prefer its result
		select {
		case res := <-done:
			return res
		default:
		}
		log.Printf("[%s] no result within %s, abandoning", name, d)
		return nil
	}
}
