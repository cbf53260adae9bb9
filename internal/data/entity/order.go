package entity

import "github.com/google/uuid"

// Order references products by ID only. UserID is the buyer's email as
// carried in the session token; no foreign key is enforced against users.
type Order struct {
	BaseSimple
	UserID     string      `db:"user_id"`
	ProductIDs []uuid.UUID `db:"product_ids"`
}
