// Package source provides the fetchers that retrieve stat documents and the
// loaders that read the player directory.
package source

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/krazyminecraft/stats-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxDocumentSize caps how much of a stat document is read.
const maxDocumentSize = 8 << 20

func decodeDocument(data []byte) (*models.RawStatDocument, error) {
	var doc models.RawStatDocument
	// Called directly so the ErrMalformedDocument chain survives.
	if err := doc.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func documentName(identity models.PlayerIdentity) (string, error) {
	if identity.ID == "" {
		return "", fmt.Errorf("%w: empty player id", models.ErrDocumentNotFound)
	}
	return identity.ID + ".json", nil
}
