package model

// Occasion is a labelled event (birthday, anniversary, ...) a customer can
// attach to an order.  Mirrors the `occasions` table.
type Occasion struct {
	ID       uint64 `json:"id"`        // occasions.id
	Name     string `json:"name"`      // occasions.name
	IsActive bool   `json:"is_active"` // occasions.is_active
}
