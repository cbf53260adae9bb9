package adaptor

import (
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/usecase"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, config.Upload.Dir, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}
