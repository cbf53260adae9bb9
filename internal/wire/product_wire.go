package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/BackamDavid/ecommerce-app/internal/adaptor"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	// Catalog routes. The uploads route is registered before {id} so
	// chi matches the literal segment first.
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", productHandler.Create)
		r.Get("/", productHandler.List)
		r.Get("/uploads/{filename}", productHandler.ServeUpload)
		r.Get("/{id}", productHandler.GetByID)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})
}
