package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
	"github.com/BackamDavid/ecommerce-app/internal/data/repository"
	"github.com/BackamDavid/ecommerce-app/internal/dto/request"
	"github.com/BackamDavid/ecommerce-app/internal/dto/response"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

type ProductService interface {
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*response.ProductResponse, error)
	List(ctx context.Context, gender string) ([]*response.ProductResponse, error)
	Update(ctx context.Context, id string, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log.With(zap.String("service", "product")),
	}
}

// NormalizeList splits a comma-separated value into an ordered list of
// trimmed, non-empty entries.
func NormalizeList(csv string) []string {
	parts := strings.Split(csv, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    optional(req.Category),
		Gender:      optional(req.Gender),
		Sizes:       NormalizeList(req.Sizes),
		Colors:      NormalizeList(req.Colors),
		Image:       req.Image,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	return response.ProductToResponse(product), nil
}

// GetByID returns nil for both a malformed id and a missing record;
// absence is not an error.
func (s *productService) GetByID(ctx context.Context, id string) (*response.ProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product")
	}
	if product == nil {
		return nil, nil
	}

	return response.ProductToResponse(product), nil
}

// List returns all products, optionally narrowed to a gender. Values
// outside {men, women} leave the listing unfiltered.
func (s *productService) List(ctx context.Context, gender string) ([]*response.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products")
	}

	applyFilter := gender == "men" || gender == "women"

	result := make([]*response.ProductResponse, 0, len(products))
	for _, product := range products {
		if applyFilter && (product.Gender == nil || *product.Gender != gender) {
			continue
		}
		result = append(result, response.ProductToResponse(product))
	}

	return result, nil
}

func (s *productService) Update(ctx context.Context, id string, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product")
	}
	if product == nil {
		return nil, nil
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = optional(*req.Category)
	}
	if req.Gender != nil {
		product.Gender = optional(*req.Gender)
	}
	if req.Sizes != nil {
		product.Sizes = NormalizeList(*req.Sizes)
	}
	if req.Colors != nil {
		product.Colors = NormalizeList(*req.Colors)
	}
	if req.Image != nil {
		product.Image = req.Image
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to update product")
	}

	s.log.Info("Product updated", zap.String("product_id", id))

	return response.ProductToResponse(product), nil
}

// Delete reports false for a malformed id or a missing record.
func (s *productService) Delete(ctx context.Context, id string) (bool, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	deleted, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("failed to delete product")
	}

	return deleted, nil
}
