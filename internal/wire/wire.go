// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/adaptor"
	"github.com/BackamDavid/ecommerce-app/internal/data/repository"
	"github.com/BackamDavid/ecommerce-app/internal/usecase"
	"github.com/BackamDavid/ecommerce-app/pkg/middleware"
	"github.com/BackamDavid/ecommerce-app/pkg/token"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

// App holds the wired dependency graph
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, tokens token.Manager, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	tokens token.Manager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireProduct(r, handler.Product)
	wireOrder(r, handler.Order, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
