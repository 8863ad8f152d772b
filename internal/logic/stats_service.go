package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// ServiceConfig wires the stats service.
type ServiceConfig struct {
	Directory DirectoryLoader
	Fetcher   Fetcher
	Collector Collector // nil means sequential
	Logger    *zap.Logger
}

type statsService struct {
	directory DirectoryLoader
	fetcher   Fetcher
	collector Collector
	logger    *zap.Logger
}

func NewStatsService(cfg ServiceConfig) StatsService {
	collector := cfg.Collector
	if collector == nil {
		collector = SequentialCollector{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &statsService{
		directory: cfg.Directory,
		fetcher:   cfg.Fetcher,
		collector: collector,
		logger:    logger,
	}
}

func (s *statsService) Players(ctx context.Context) ([]models.PlayerIdentity, error) {
	players, err := s.directory.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	return players, nil
}

func (s *statsService) collect(ctx context.Context) ([]models.PlayerIdentity, []models.PlayerAggregate, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, nil, err
	}
	return players, CollectPlayers(ctx, players, s.fetcher, s.collector, s.logger), nil
}

// ServerStats returns the server-wide totals and their formatted lines.
func (s *statsService) ServerStats(ctx context.Context) (*models.ServerStatsResponse, error) {
	_, aggregates, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	totals := MergePlayers(aggregates)
	return &models.ServerStatsResponse{
		Totals: totals,
		Lines:  ServerOverview(totals),
	}, nil
}

// Leaderboard ranks every player by metric.
func (s *statsService) Leaderboard(ctx context.Context, metric models.Metric, limit int) (*models.LeaderboardResponse, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownMetric, metric)
	}
	players, aggregates, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	return &models.LeaderboardResponse{
		Metric:  metric,
		Title:   metric.Title(),
		Players: RankPlayers(aggregates, metric, limit),
		Total:   len(players),
	}, nil
}

func (s *statsService) document(ctx context.Context, name string) (models.PlayerIdentity, *models.RawStatDocument, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return models.PlayerIdentity{}, nil, err
	}
	identity, err := FindPlayer(players, name)
	if err != nil {
		return models.PlayerIdentity{}, nil, err
	}
	pass := NewPass(s.fetcher, s.logger)
	return identity, pass.Document(ctx, identity), nil
}

// PlayerDetail returns one player's aggregate.
func (s *statsService) PlayerDetail(ctx context.Context, name string) (*models.PlayerDetailResponse, error) {
	identity, doc, err := s.document(ctx, name)
	if err != nil {
		return nil, err
	}
	agg := AggregatePlayer(identity, doc)
	return &models.PlayerDetailResponse{
		Aggregate: agg,
		Lines:     PlayerLines(agg),
	}, nil
}

// PlayerCategory lists every counter of one category for a player.
func (s *statsService) PlayerCategory(ctx context.Context, name string, q models.CategoryQuery) (*models.CategoryListing, error) {
	category, err := CategoryKey(q.Category)
	if err != nil {
		return nil, err
	}
	identity, doc, err := s.document(ctx, name)
	if err != nil {
		return nil, err
	}
	return &models.CategoryListing{
		Player:   identity,
		Category: category,
		Rows:     ListCategory(doc, category, q.Search, q.Sort),
		HadData:  doc != nil,
	}, nil
}

// PlayerSummary builds the shareable card data for a player.
func (s *statsService) PlayerSummary(ctx context.Context, name string) (*models.PlayerSummary, error) {
	identity, doc, err := s.document(ctx, name)
	if err != nil {
		return nil, err
	}
	summary := BuildSummary(identity, doc)
	return &summary, nil
}
