package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/adaptor"
	"github.com/BackamDavid/ecommerce-app/pkg/middleware"
	"github.com/BackamDavid/ecommerce-app/pkg/token"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tokens token.Manager,
	log *zap.Logger,
) {
	// Protected routes (require a valid session token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		r.Post("/api/orders", orderHandler.Create)
		r.Get("/api/orders", orderHandler.ListMine)
	})
}
