package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
	"github.com/BackamDavid/ecommerce-app/internal/data/repository"
	"github.com/BackamDavid/ecommerce-app/internal/dto/response"
)

// ErrNoValidProducts is returned when none of the submitted product ids
// resolve in the catalog. Nothing is persisted in that case; the store
// layer is the single authority on order creation success.
var ErrNoValidProducts = errors.New("no valid product IDs provided")

type OrderService interface {
	Create(ctx context.Context, userID string, productIDs []string) (*response.OrderResponse, error)
	ListByUser(ctx context.Context, userID string) ([]*response.OrderViewResponse, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	log *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		log:         log.With(zap.String("service", "order")),
	}
}

// Create validates each submitted id against the catalog. Ids that fail
// to parse or do not resolve are dropped and counted; the order persists
// only the valid subset. With no valid ids at all, nothing is written
// and ErrNoValidProducts is returned.
func (s *orderService) Create(ctx context.Context, userID string, productIDs []string) (*response.OrderResponse, error) {
	validIDs := make([]uuid.UUID, 0, len(productIDs))
	invalidCount := 0

	for _, pid := range productIDs {
		productID, err := uuid.Parse(pid)
		if err != nil {
			invalidCount++
			continue
		}

		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to resolve product for order",
				zap.Error(err), zap.String("product_id", pid))
			return nil, fmt.Errorf("failed to validate products")
		}
		if product == nil {
			invalidCount++
			continue
		}

		validIDs = append(validIDs, productID)
	}

	if len(validIDs) == 0 {
		s.log.Warn("Order rejected: no valid product IDs",
			zap.String("user_id", userID),
			zap.Int("submitted", len(productIDs)))
		return nil, ErrNoValidProducts
	}

	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:     userID,
		ProductIDs: validIDs,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create order")
	}

	resp := &response.OrderResponse{
		ID:        order.ID.String(),
		UserID:    order.UserID,
		Products:  make([]string, 0, len(validIDs)),
		CreatedAt: order.CreatedAt,
	}
	for _, id := range validIDs {
		resp.Products = append(resp.Products, id.String())
	}
	if invalidCount > 0 {
		resp.Warning = fmt.Sprintf("%d invalid product ID(s) were ignored.", invalidCount)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.Int("products", len(validIDs)),
		zap.Int("ignored", invalidCount))

	return resp, nil
}

// ListByUser returns the given user's orders with each stored product id
// resolved to a denormalized snapshot. Ids whose product has since been
// deleted are dropped from the view.
func (s *orderService) ListByUser(ctx context.Context, userID string) ([]*response.OrderViewResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders")
	}

	views := make([]*response.OrderViewResponse, 0, len(orders))
	for _, order := range orders {
		view := &response.OrderViewResponse{
			ID:        order.ID.String(),
			UserID:    order.UserID,
			Products:  make([]response.ProductSnapshot, 0, len(order.ProductIDs)),
			CreatedAt: order.CreatedAt,
		}

		for _, productID := range order.ProductIDs {
			product, err := s.productRepo.FindByID(ctx, productID)
			if err != nil {
				s.log.Error("Failed to resolve product for order view",
					zap.Error(err),
					zap.String("order_id", order.ID.String()),
					zap.String("product_id", productID.String()))
				return nil, fmt.Errorf("failed to resolve order products")
			}
			if product == nil {
				// Product deleted after order placement.
				continue
			}

			sizes := product.Sizes
			if sizes == nil {
				sizes = []string{}
			}
			colors := product.Colors
			if colors == nil {
				colors = []string{}
			}

			view.Products = append(view.Products, response.ProductSnapshot{
				ID:       product.ID.String(),
				Name:     product.Name,
				Price:    product.Price,
				Category: product.Category,
				Sizes:    sizes,
				Colors:   colors,
				Image:    product.Image,
			})
		}

		views = append(views, view)
	}

	return views, nil
}
