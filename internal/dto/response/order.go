package response

import (
	"time"
)

// OrderResponse is returned from order creation: the persisted product
// ids plus a warning when some submitted ids were ignored.
type OrderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Products  []string  `json:"products"`
	Warning   string    `json:"warning,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductSnapshot is the denormalized product detail resolved at read
// time. Stock is intentionally absent; it is not re-checked.
type ProductSnapshot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category *string  `json:"category"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	Image    *string  `json:"image"`
}

// OrderViewResponse is an order as listed back to its owner, with each
// stored product id resolved to a snapshot.
type OrderViewResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Products  []ProductSnapshot `json:"products"`
	CreatedAt time.Time         `json:"created_at"`
}
