// Package analyses caches fetched analysis records locally so the most
// recent history stays viewable while the backend is unreachable.
package analyses

import (
	"context"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
)

type Repository interface {
	// Upsert inserts or replaces a cached record by id.
	Upsert(ctx context.Context, a *models.Analysis) error
	// ListByUser returns cached records for a user, newest first.
	ListByUser(ctx context.Context, username string) ([]models.Analysis, error)
	// DeleteByUser drops all cached records for a user.
	DeleteByUser(ctx context.Context, username string) error
}
