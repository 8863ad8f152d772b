package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyminecraft/stats-api/internal/models"
)

func newStatsHost(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/stats/"+steve.ID+".json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDocument))
	})
	mux.HandleFunc("/stats/malformed.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats": "nope"}`))
	})
	mux.HandleFunc("/stats/down.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/usercache.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"Steve","uuid":"` + steve.ID + `","expiresOn":"2026-01-01 00:00:00 +0000"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher(t *testing.T) {
	srv := newStatsHost(t)
	f := NewHTTPFetcher(srv.URL+"/stats/", 5*time.Second)
	ctx := context.Background()

	doc, err := f.Fetch(ctx, steve)
	require.NoError(t, err)
	assert.Equal(t, int64(12), doc.Stats[models.CategoryMined]["minecraft:stone"])

	_, err = f.Fetch(ctx, models.PlayerIdentity{ID: "unknown"})
	assert.True(t, errors.Is(err, models.ErrDocumentNotFound))

	_, err = f.Fetch(ctx, models.PlayerIdentity{ID: "malformed"})
	assert.True(t, errors.Is(err, models.ErrMalformedDocument))

	_, err = f.Fetch(ctx, models.PlayerIdentity{ID: "down"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrDocumentNotFound))
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPDirectory(t *testing.T) {
	srv := newStatsHost(t)

	players, err := NewHTTPDirectory(srv.URL+"/usercache.json", time.Second, zapNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.PlayerIdentity{steve}, players)

	_, err = NewHTTPDirectory(srv.URL+"/missing.json", time.Second, zapNop()).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDirectoryNotFound)
	assert.NotErrorIs(t, err, models.ErrDocumentNotFound)
	assert.NotContains(t, err.Error(), "stat document")
}
