package request

// ProductRequest carries the multipart form fields of a catalog add.
// Price and stock are coerced from their form values by the handler;
// sizes and colors arrive as comma-separated strings.
type ProductRequest struct {
	Name        string  `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	Category    string
	Gender      string
	Sizes       string
	Colors      string
	Image       *string
}

// ProductUpdateRequest carries a partial update; nil fields are left
// untouched.
type ProductUpdateRequest struct {
	Name        *string
	Description *string
	Price       *float64 `validate:"omitempty,gte=0"`
	Stock       *int     `validate:"omitempty,gte=0"`
	Category    *string
	Gender      *string
	Sizes       *string
	Colors      *string
	Image       *string
}
