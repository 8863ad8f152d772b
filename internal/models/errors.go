package models

import "errors"

var (
	// ErrDocumentNotFound is returned by a fetcher when no statistics exist for an identity.
	ErrDocumentNotFound = errors.New("stat document not found")

	// ErrMalformedDocument is returned when a document was retrieved but lacks the expected shape.
	ErrMalformedDocument = errors.New("malformed stat document")

	// ErrDirectoryNotFound is returned when the player directory itself does not exist.
	ErrDirectoryNotFound = errors.New("player directory not found")

	ErrPlayerNotFound  = errors.New("player not found")
	ErrUnknownMetric   = errors.New("unknown leaderboard metric")
	ErrUnknownCategory = errors.New("unknown stat category")
)
