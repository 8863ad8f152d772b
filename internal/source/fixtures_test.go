package source

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/krazyminecraft/stats-api/internal/models"
)

const sampleDocument = `{
  "stats": {
    "minecraft:custom": {"minecraft:play_time": 72000, "minecraft:walk_one_cm": "1500"},
    "minecraft:mined": {"minecraft:stone": 12}
  },
  "DataVersion": 3955
}`

var steve = models.PlayerIdentity{ID: "069a79f4-44e9-4726-a5be-fca90e38aaf5", DisplayName: "Steve"}

// MockCacheStore implements CacheStore in memory
type MockCacheStore struct {
	mu      sync.Mutex
	Values  map[string]string
	TTLs    map[string]time.Duration
	GetErr  error
	SetErr  error
	PingErr error
}

func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{Values: map[string]string{}, TTLs: map[string]time.Duration{}}
}

func (m *MockCacheStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	v, ok := m.Values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (m *MockCacheStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	switch v := value.(type) {
	case string:
		m.Values[key] = v
	case []byte:
		m.Values[key] = string(v)
	default:
		return errors.New("unsupported value type")
	}
	m.TTLs[key] = expiration
	return nil
}

func (m *MockCacheStore) Ping(ctx context.Context) error {
	return m.PingErr
}

// countingFetcher records calls and delegates to FetchFunc
type countingFetcher struct {
	mu        sync.Mutex
	calls     int
	FetchFunc func(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error)
}

func (f *countingFetcher) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.FetchFunc(ctx, identity)
}

// MockPgPool serves canned rows for the directory query
type MockPgPool struct {
	QueryFunc func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.QueryFunc(ctx, sql, args...)
}

type playerRow struct {
	id, name   string
	skin, head *string
}

// MockRows implements the part of pgx.Rows the directory uses
type MockRows struct {
	pgx.Rows
	rows    []playerRow
	pos     int
	err     error
	scanErr error
	closed  bool
}

func (m *MockRows) Next() bool {
	if m.pos >= len(m.rows) {
		return false
	}
	m.pos++
	return true
}

func (m *MockRows) Scan(dest ...any) error {
	if m.scanErr != nil {
		return m.scanErr
	}
	r := m.rows[m.pos-1]
	*dest[0].(*string) = r.id
	*dest[1].(*string) = r.name
	*dest[2].(**string) = r.skin
	*dest[3].(**string) = r.head
	return nil
}

func (m *MockRows) Err() error { return m.err }
func (m *MockRows) Close()     { m.closed = true }

func strPtr(s string) *string { return &s }
