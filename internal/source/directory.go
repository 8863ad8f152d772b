package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

func decodeDirectory(data []byte, logger *zap.SugaredLogger) ([]models.PlayerIdentity, error) {
	var entries []models.PlayerIdentity
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode usercache: %w", err)
	}
	return logic.Dedupe(entries, logger), nil
}

// FileDirectory reads a usercache.json file.
type FileDirectory struct {
	path   string
	logger *zap.SugaredLogger
}

func NewFileDirectory(path string, logger *zap.Logger) *FileDirectory {
	return &FileDirectory{path: path, logger: logger.Sugar()}
}

func (d *FileDirectory) Load(ctx context.Context) ([]models.PlayerIdentity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", models.ErrDirectoryNotFound, d.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read usercache: %w", err)
	}
	return decodeDirectory(data, d.logger)
}

// HTTPDirectory downloads usercache.json from a static host.
type HTTPDirectory struct {
	url    string
	client *http.Client
	logger *zap.SugaredLogger
}

func NewHTTPDirectory(url string, timeout time.Duration, logger *zap.Logger) *HTTPDirectory {
	return &HTTPDirectory{url: url, client: &http.Client{Timeout: timeout}, logger: logger.Sugar()}
}

func (d *HTTPDirectory) Load(ctx context.Context) ([]models.PlayerIdentity, error) {
	data, err := get(ctx, d.client, d.url)
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("%w: %s", models.ErrDirectoryNotFound, d.url)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch usercache: %w", err)
	}
	return decodeDirectory(data, d.logger)
}

// PgPool is the subset of pgxpool.Pool the directory needs.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const directoryQuery = `SELECT uuid, name, skin, head FROM players ORDER BY position`

// PostgresDirectory reads the directory from a `players` table kept in sync
// with usercache.json by the server operator.
type PostgresDirectory struct {
	pool   PgPool
	logger *zap.SugaredLogger
}

func NewPostgresDirectory(pool PgPool, logger *zap.Logger) *PostgresDirectory {
	return &PostgresDirectory{pool: pool, logger: logger.Sugar()}
}

func (d *PostgresDirectory) Load(ctx context.Context) ([]models.PlayerIdentity, error) {
	rows, err := d.pool.Query(ctx, directoryQuery)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var entries []models.PlayerIdentity
	for rows.Next() {
		var (
			p          models.PlayerIdentity
			skin, head *string
		)
		if err := rows.Scan(&p.ID, &p.DisplayName, &skin, &head); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		if skin != nil {
			p.SkinRef = *skin
		}
		if head != nil {
			p.HeadRef = *head
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return logic.Dedupe(entries, d.logger), nil
}
