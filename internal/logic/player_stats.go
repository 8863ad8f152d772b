package logic

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// AggregatePlayer derives the per-player record from a raw document. A nil
// document (not found) or one failing validation yields a zeroed aggregate
// with HadData=false.
func AggregatePlayer(identity models.PlayerIdentity, doc *models.RawStatDocument) models.PlayerAggregate {
	if doc.Validate() != nil {
		return emptyAggregate(identity)
	}

	return models.PlayerAggregate{
		Identity:               identity,
		PlayedTimeTicks:        ExtractCustom(doc, models.CustomPlayTime),
		PlayerKills:            ExtractCustom(doc, models.CustomPlayerKills),
		DamageDealt:            ExtractCustom(doc, models.CustomDamageDealt),
		DamageTaken:            ExtractCustom(doc, models.CustomDamageTaken),
		DistanceTravelledUnits: DistanceTravelled(doc),

		MobsKilled:    ExtractBreakdown(doc, models.CategoryKilled),
		Deaths:        ExtractBreakdown(doc, models.CategoryKilledBy),
		BlocksMined:   ExtractBreakdown(doc, models.CategoryMined),
		BlocksPlaced:  ExtractBreakdown(doc, models.CategoryUsed),
		ItemsCrafted:  ExtractBreakdown(doc, models.CategoryCrafted),
		ItemsBroken:   ExtractBreakdown(doc, models.CategoryBroken),
		ItemsPickedUp: ExtractBreakdown(doc, models.CategoryPickedUp),
		ItemsDropped:  ExtractBreakdown(doc, models.CategoryDropped),

		HadData: true,
	}
}

func emptyAggregate(identity models.PlayerIdentity) models.PlayerAggregate {
	return models.PlayerAggregate{
		Identity:      identity,
		MobsKilled:    models.CategoryBreakdown{},
		Deaths:        models.CategoryBreakdown{},
		BlocksMined:   models.CategoryBreakdown{},
		BlocksPlaced:  models.CategoryBreakdown{},
		ItemsCrafted:  models.CategoryBreakdown{},
		ItemsBroken:   models.CategoryBreakdown{},
		ItemsPickedUp: models.CategoryBreakdown{},
		ItemsDropped:  models.CategoryBreakdown{},
	}
}

// FetchOutcome classifies a fetch or validation error for logs and metrics.
func FetchOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, models.ErrDocumentNotFound):
		return OutcomeNotFound
	case errors.Is(err, models.ErrMalformedDocument):
		return OutcomeMalformed
	default:
		return OutcomeError
	}
}

// Pass is one aggregation pass over the directory. It fetches each identity's
// document, aggregates it, and reports a failing identity at most once.
// A Pass is safe for concurrent use by a bounded collector.
type Pass struct {
	ID      string
	fetcher Fetcher
	logger  *zap.SugaredLogger

	mu       sync.Mutex
	reported map[string]struct{}
	missing  int
}

// NewPass starts a pass with a fresh id.
func NewPass(fetcher Fetcher, logger *zap.Logger) *Pass {
	return &Pass{
		ID:       uuid.NewString(),
		fetcher:  fetcher,
		logger:   logger.Sugar(),
		reported: make(map[string]struct{}),
	}
}

// Document fetches and validates one identity's document. Failures are
// reported once and yield nil.
func (p *Pass) Document(ctx context.Context, identity models.PlayerIdentity) *models.RawStatDocument {
	start := time.Now()
	doc, err := p.fetcher.Fetch(ctx, identity)
	fetchDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		err = doc.Validate()
	}
	if err != nil {
		p.report(identity, err)
		return nil
	}

	documentsFetched.WithLabelValues(OutcomeOK).Inc()
	return doc
}

// Player fetches and aggregates one identity. It never fails: fetch and
// validation errors produce an aggregate with HadData=false.
func (p *Pass) Player(ctx context.Context, identity models.PlayerIdentity) models.PlayerAggregate {
	return AggregatePlayer(identity, p.Document(ctx, identity))
}

// Missing returns how many identities contributed nothing so far.
func (p *Pass) Missing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.missing
}

func (p *Pass) report(identity models.PlayerIdentity, err error) {
	p.mu.Lock()
	if _, seen := p.reported[identity.ID]; seen {
		p.mu.Unlock()
		return
	}
	p.reported[identity.ID] = struct{}{}
	p.missing++
	p.mu.Unlock()

	outcome := FetchOutcome(err)
	documentsFetched.WithLabelValues(outcome).Inc()

	fields := []interface{}{
		"pass_id", p.ID,
		"player_id", identity.ID,
		"player_name", identity.DisplayName,
		"outcome", outcome,
	}
	if outcome == OutcomeNotFound {
		p.logger.Infow("No stats for player", fields...)
		return
	}
	p.logger.Warnw("Failed to load stats for player", append(fields, "error", err)...)
}
