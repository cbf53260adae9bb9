package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/dto/request"
	"github.com/BackamDavid/ecommerce-app/internal/usecase"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err == io.EOF {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			utils.ResponseUnprocessable(w, "product_ids must be an array of strings", nil)
			return
		}

		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if len(req.ProductIDs) == 0 {
		utils.ResponseBadRequest(w, "product_ids field is required", nil)
		return
	}

	for _, pid := range req.ProductIDs {
		if strings.TrimSpace(pid) == "" {
			utils.ResponseUnprocessable(w, "All product IDs must be non-empty strings", req.ProductIDs)
			return
		}
	}

	order, err := h.service.Create(r.Context(), identity.Email, req.ProductIDs)
	if err != nil {
		if errors.Is(err, usecase.ErrNoValidProducts) {
			utils.ResponseUnprocessable(w,
				"No valid product IDs provided. None of the provided product IDs exist in the database.",
				req.ProductIDs)
			return
		}

		h.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", identity.Email))
		utils.ResponseInternalError(w, "Failed to create order")
		return
	}

	utils.ResponseCreated(w, "Order created", order)
}

// ListMine handles GET /api/orders; results are scoped to the identity
// claim of the verified session token.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.ListByUser(r.Context(), identity.Email)
	if err != nil {
		h.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", identity.Email))
		utils.ResponseInternalError(w, "Failed to fetch orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}
