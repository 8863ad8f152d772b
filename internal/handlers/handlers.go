package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/logic"
)

// CheckFunc reports whether a dependency is reachable.
type CheckFunc func(ctx context.Context) error

type Config struct {
	Stats           logic.StatsService
	Checks          map[string]CheckFunc // readiness probes by name
	LeaderboardSize int
	Logger          *zap.Logger
}

type Handler struct {
	stats           logic.StatsService
	checks          map[string]CheckFunc
	leaderboardSize int
	logger          *zap.SugaredLogger
	validator       *validator.Validate
}

func New(cfg Config) *Handler {
	size := cfg.LeaderboardSize
	if size <= 0 {
		size = logic.LeaderboardSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		stats:           cfg.Stats,
		checks:          cfg.Checks,
		leaderboardSize: size,
		logger:          logger.Sugar(),
		validator:       validator.New(),
	}
}
