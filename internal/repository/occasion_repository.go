package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/giftshop-catalog/internal/model"
)

const qActiveOccasions = `SELECT id, name, is_active
	FROM occasions WHERE is_active = TRUE ORDER BY name ASC`

// OccasionRepo reads occasions.
type OccasionRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewOccasionRepo(db *sql.DB, timeout time.Duration) *OccasionRepo {
	return &OccasionRepo{db: db, timeout: timeout}
}

// ListActive returns every active occasion ordered by name.
func (r *OccasionRepo) ListActive(ctx context.Context) ([]model.Occasion, error) {
	return queryActive(ctx, r.db, r.timeout, qActiveOccasions, func(s rowScanner) (model.Occasion, error) {
		var o model.Occasion
		err := s.Scan(&o.ID, &o.Name, &o.IsActive)
		return o, err
	})
}
