package worker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

// GroupCollector runs at most Limit aggregations at once for the duration of
// a single Collect call. It suits one-shot callers such as the CLI that have
// no long-lived pool.
type GroupCollector struct {
	Limit int
}

func (c GroupCollector) Collect(ctx context.Context, identities []models.PlayerIdentity, aggregate logic.AggregateFunc) []models.PlayerAggregate {
	results := make([]models.PlayerAggregate, len(identities))

	g, gctx := errgroup.WithContext(ctx)
	if c.Limit > 0 {
		g.SetLimit(c.Limit)
	}
	for i, identity := range identities {
		g.Go(func() error {
			results[i] = aggregate(gctx, identity)
			return nil
		})
	}
	_ = g.Wait() // aggregations never fail
	return results
}
