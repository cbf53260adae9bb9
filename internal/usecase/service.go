package usecase

import (
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/data/repository"
	"github.com/BackamDavid/ecommerce-app/pkg/token"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Order   OrderService
}

func NewService(repo *repository.Repository, tokens token.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, config, log),
		Product: NewProductService(repo.Product, log),
		Order:   NewOrderService(repo.Order, repo.Product, log),
	}
}
