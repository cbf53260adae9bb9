package repository

import (
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/pkg/database"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
