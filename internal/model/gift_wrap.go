package model

import "github.com/shopspring/decimal"

// GiftWrap is a wrapping option shown at checkout.  It corresponds to a row
// in the `gift_wraps` table.  Rows are managed by the admin tooling; this
// service only reads the active ones.
type GiftWrap struct {
	ID          uint64          `json:"id"`                    // gift_wraps.id
	Name        string          `json:"name"`                  // gift_wraps.name
	Description *string         `json:"description,omitempty"` // gift_wraps.description (nullable)
	Price       decimal.Decimal `json:"price"`                 // gift_wraps.price DECIMAL(10,2)
	IsActive    bool            `json:"is_active"`             // gift_wraps.is_active
}
