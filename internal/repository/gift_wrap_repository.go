package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/giftshop-catalog/internal/model"
)

const qActiveGiftWraps = `SELECT id, name, description, price, is_active
	FROM gift_wraps WHERE is_active = TRUE ORDER BY name ASC`

// GiftWrapRepo reads gift wrap options.
type GiftWrapRepo struct {
	db      *sql.DB
	timeout time.Duration // per-query bound; zero leaves the caller's context alone
}

func NewGiftWrapRepo(db *sql.DB, timeout time.Duration) *GiftWrapRepo {
	return &GiftWrapRepo{db: db, timeout: timeout}
}

// ListActive returns every active gift wrap ordered by name.  Ordering uses
// the column collation.
func (r *GiftWrapRepo) ListActive(ctx context.Context) ([]model.GiftWrap, error) {
	return queryActive(ctx, r.db, r.timeout, qActiveGiftWraps, func(s rowScanner) (model.GiftWrap, error) {
		var (
			g    model.GiftWrap
			desc sql.NullString
		)
		if err := s.Scan(&g.ID, &g.Name, &desc, &g.Price, &g.IsActive); err != nil {
			return g, err
		}
		if desc.Valid {
			g.Description = &desc.String
		}
		return g, nil
	})
}
