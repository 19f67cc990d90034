package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/giftshop-catalog/internal/model"
)

// Fallback messages used when the store fails without saying why.
const (
	ErrMsgGiftWraps = "Failed to fetch gift wraps"
	ErrMsgOccasions = "Failed to fetch occasions"
)

// GiftWrapLister returns active gift wraps sorted by name.
type GiftWrapLister interface {
	ListActive(ctx context.Context) ([]model.GiftWrap, error)
}

// OccasionLister returns active occasions sorted by name.
type OccasionLister interface {
	ListActive(ctx context.Context) ([]model.Occasion, error)
}

// CatalogHandler serves the public, read-only catalog listings.
type CatalogHandler struct {
	GiftWraps GiftWrapLister
	Occasions OccasionLister
	Log       *zap.Logger
}

// NewCatalogHandler panics if a lister is nil; a nil logger is replaced by a
// no-op one.
func NewCatalogHandler(g GiftWrapLister, o OccasionLister, log *zap.Logger) *CatalogHandler {
	if g == nil || o == nil {
		panic("nil lister passed to NewCatalogHandler")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler{GiftWraps: g, Occasions: o, Log: log}
}

// ListGiftWraps handles GET /v1/gift-wraps.
func (h *CatalogHandler) ListGiftWraps(c echo.Context) error {
	return listActive(c, h.Log, "gift_wraps", ErrMsgGiftWraps, h.GiftWraps.ListActive)
}

// ListOccasions handles GET /v1/occasions.
func (h *CatalogHandler) ListOccasions(c echo.Context) error {
	return listActive(c, h.Log, "occasions", ErrMsgOccasions, h.Occasions.ListActive)
}
