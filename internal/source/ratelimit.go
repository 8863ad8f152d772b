package source

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

// RateLimitedFetcher throttles requests to the wrapped fetcher so a pass over
// a large directory does not hammer the stats host.
type RateLimitedFetcher struct {
	next    logic.Fetcher
	limiter *rate.Limiter
}

// NewRateLimitedFetcher allows perSecond fetches with the given burst. A
// non-positive rate disables limiting.
func NewRateLimitedFetcher(next logic.Fetcher, perSecond float64, burst int) *RateLimitedFetcher {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedFetcher{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (f *RateLimitedFetcher) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for fetch slot: %w", err)
	}
	return f.next.Fetch(ctx, identity)
}
