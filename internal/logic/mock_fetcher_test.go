package logic

import (
	"context"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// mapFetcher serves documents from memory. Identities missing from docs are
// not found; identities in errs fail with that error.
type mapFetcher struct {
	mu    sync.Mutex
	docs  map[string]*models.RawStatDocument
	errs  map[string]error
	calls []string
}

func (f *mapFetcher) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	f.mu.Lock()
	f.calls = append(f.calls, identity.ID)
	f.mu.Unlock()

	if err, ok := f.errs[identity.ID]; ok {
		return nil, err
	}
	doc, ok := f.docs[identity.ID]
	if !ok {
		return nil, models.ErrDocumentNotFound
	}
	return doc, nil
}

type staticDirectory struct {
	players []models.PlayerIdentity
	err     error
}

func (d staticDirectory) Load(ctx context.Context) ([]models.PlayerIdentity, error) {
	return d.players, d.err
}

func player(id string) models.PlayerIdentity {
	return models.PlayerIdentity{ID: id, DisplayName: "name-" + id}
}

func doc(stats map[string]map[string]int64) *models.RawStatDocument {
	return &models.RawStatDocument{Stats: stats}
}

// randomDoc builds a document with random counters in every tracked category.
func randomDoc(f *gofakeit.Faker) *models.RawStatDocument {
	stats := map[string]map[string]int64{
		models.CategoryCustom: {
			models.CustomPlayTime:    int64(f.IntRange(0, 5_000_000)),
			models.CustomPlayerKills: int64(f.IntRange(0, 50)),
			models.CustomDamageDealt: int64(f.IntRange(0, 100_000)),
			models.CustomDamageTaken: int64(f.IntRange(0, 100_000)),
		},
	}
	for _, k := range MovementKeys {
		stats[models.CategoryCustom][k] = int64(f.IntRange(0, 1_000_000))
	}
	for _, c := range BreakdownCategories {
		entries := map[string]int64{}
		for i := 0; i < f.IntRange(0, 6); i++ {
			entries[fmt.Sprintf("minecraft:%s_%d", f.Word(), f.IntRange(0, 3))] += int64(f.IntRange(1, 500))
		}
		stats[c] = entries
	}
	return doc(stats)
}
