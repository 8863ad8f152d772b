package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// FileFetcher reads `<dir>/<uuid>.json`, the layout of a server's
// world/stats directory.
type FileFetcher struct {
	dir string
}

func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

func (f *FileFetcher) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := documentName(identity)
	if err != nil {
		return nil, err
	}
	// Ids come from an external directory and must not escape dir
	if strings.ContainsAny(identity.ID, `/\`) {
		return nil, fmt.Errorf("%w: invalid player id %q", models.ErrDocumentNotFound, identity.ID)
	}

	file, err := os.Open(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, models.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open stat document: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read stat document: %w", err)
	}
	return decodeDocument(data)
}
