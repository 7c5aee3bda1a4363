// Package store persists reviews for the bundled stand-in service. The
// real analysis service owns storage in production; this store exists so
// `crit stub` keeps history across restarts during development.
package store

import (
	"context"

	"github.com/critapp/crit/internal/models"
)

// Store defines the persistence interface for the stub service.
type Store interface {
	CreateReview(ctx context.Context, r *models.Review) error
	GetReview(ctx context.Context, id string) (*models.Review, error)
	ListReviews(ctx context.Context, limit int) ([]*models.Review, error)
	DeleteReview(ctx context.Context, id string) (int64, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
