package source

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

const (
	documentKeyPrefix = "mcstats:doc:"
	negativeKeySuffix = ":neg"

	// NegativeCacheTTL is how long a missing document is remembered.
	NegativeCacheTTL = time.Minute
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mcstats_document_cache_lookups_total",
	Help: "Document cache lookups, by result",
}, []string{"result"})

// CacheStore is the subset of Redis the document cache needs. Get returns
// redis.Nil on a miss.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Ping(ctx context.Context) error
}

// RedisCacheStore implements CacheStore using Redis
type RedisCacheStore struct {
	client *redis.Client
}

func NewRedisCacheStore(client *redis.Client) *RedisCacheStore {
	return &RedisCacheStore{client: client}
}

func (s *RedisCacheStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *RedisCacheStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

func (s *RedisCacheStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// CachedFetcher keeps decoded documents in Redis for ttl and remembers
// missing ones for NegativeCacheTTL. Cache failures never fail a fetch.
type CachedFetcher struct {
	next   logic.Fetcher
	store  CacheStore
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCachedFetcher(next logic.Fetcher, store CacheStore, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	return &CachedFetcher{next: next, store: store, ttl: ttl, logger: logger.Sugar()}
}

func (f *CachedFetcher) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	key := documentKeyPrefix + identity.ID

	if _, err := f.store.Get(ctx, key+negativeKeySuffix); err == nil {
		cacheLookups.WithLabelValues("negative").Inc()
		return nil, models.ErrDocumentNotFound
	}

	data, err := f.store.Get(ctx, key)
	switch {
	case err == nil:
		doc, derr := decodeDocument([]byte(data))
		if derr == nil {
			cacheLookups.WithLabelValues("hit").Inc()
			return doc, nil
		}
		// Corrupted entry, refetch
		f.logger.Warnw("Discarding corrupted cache entry", "player_id", identity.ID, "error", derr)
	case !errors.Is(err, redis.Nil):
		f.logger.Warnw("Document cache read failed", "player_id", identity.ID, "error", err)
	}
	cacheLookups.WithLabelValues("miss").Inc()

	doc, err := f.next.Fetch(ctx, identity)
	if errors.Is(err, models.ErrDocumentNotFound) {
		if serr := f.store.Set(ctx, key+negativeKeySuffix, "1", NegativeCacheTTL); serr != nil {
			f.logger.Warnw("Document cache write failed", "player_id", identity.ID, "error", serr)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		f.logger.Warnw("Failed to encode document for cache", "player_id", identity.ID, "error", err)
		return doc, nil
	}
	if err := f.store.Set(ctx, key, encoded, f.ttl); err != nil {
		f.logger.Warnw("Document cache write failed", "player_id", identity.ID, "error", err)
	}
	return doc, nil
}

// Ping reports whether the cache is reachable.
func (f *CachedFetcher) Ping(ctx context.Context) error {
	return f.store.Ping(ctx)
}
