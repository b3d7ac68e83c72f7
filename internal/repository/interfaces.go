package repository

import (
	"context"
	"time"

	"github.com/yourusername/pick-settler/internal/models"
)

// PickFilter selects picks by status, sport and game date range.
// Zero values mean "any".
type PickFilter struct {
	Statuses []models.PickStatus
	Sport    models.Sport
	From     time.Time
	To       time.Time
	Limit    int
}

// Matches reports whether a pick satisfies the filter
func (f PickFilter) Matches(p *models.Pick) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if p.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Sport != "" && p.Sport != f.Sport {
		return false
	}
	if !f.From.IsZero() && p.GameDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && p.GameDate.After(f.To) {
		return false
	}
	return true
}

// PickRepository defines the interface for pick data access
type PickRepository interface {
	Find(ctx context.Context, filter PickFilter) ([]*models.Pick, error)
	GetByID(ctx context.Context, id string) (*models.Pick, error)
	// Upsert inserts or replaces a pick keyed by id
	Upsert(ctx context.Context, pick *models.Pick) error
	// Settle writes the settlement fields only while the stored pick is still
	// pending or live. It returns models.ErrAlreadySettled otherwise.
	Settle(ctx context.Context, pick *models.Pick) error
}
