package logic

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// Dedupe drops identities whose id was already seen, keeping the first, and
// entries without an id.
func Dedupe(identities []models.PlayerIdentity, logger *zap.SugaredLogger) []models.PlayerIdentity {
	seen := make(map[string]struct{}, len(identities))
	out := make([]models.PlayerIdentity, 0, len(identities))
	for _, p := range identities {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			logger.Warnw("Skipping directory entry without id", "player_name", p.DisplayName)
			continue
		}
		if _, dup := seen[id]; dup {
			logger.Warnw("Skipping duplicate directory entry", "player_id", id, "player_name", p.DisplayName)
			continue
		}
		seen[id] = struct{}{}
		p.ID = id
		out = append(out, p)
	}
	return out
}

// FindPlayer looks a player up by exact (trimmed) display name, then by id.
func FindPlayer(identities []models.PlayerIdentity, name string) (models.PlayerIdentity, error) {
	name = strings.TrimSpace(name)
	if name != "" {
		for _, p := range identities {
			if p.DisplayName == name {
				return p, nil
			}
		}
		for _, p := range identities {
			if p.ID == name {
				return p, nil
			}
		}
	}
	return models.PlayerIdentity{}, fmt.Errorf("%w: %q", models.ErrPlayerNotFound, name)
}
