package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/BackamDavid/ecommerce-app/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
}
