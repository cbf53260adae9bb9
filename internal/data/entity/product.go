package entity

type Product struct {
	Base
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Price       float64  `db:"price"`
	Stock       int      `db:"stock"`
	Category    *string  `db:"category"`
	Gender      *string  `db:"gender"`
	Sizes       []string `db:"sizes"`
	Colors      []string `db:"colors"`
	Image       *string  `db:"image"`
}
