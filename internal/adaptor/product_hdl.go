package adaptor

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/dto/request"
	"github.com/BackamDavid/ecommerce-app/internal/usecase"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

const maxUploadSize = 10 << 20 // 10 MB

type ProductHandler struct {
	service   usecase.ProductService
	uploadDir string
	log       *zap.Logger
}

func NewProductHandler(service usecase.ProductService, uploadDir string, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:   service,
		uploadDir: uploadDir,
		log:       log.With(zap.String("handler", "product")),
	}
}

// Create handles POST /api/products (multipart form)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	price, err := parseFloatField(r.FormValue("price"))
	if err != nil {
		utils.ResponseBadRequest(w, "price must be numeric", nil)
		return
	}

	stock, err := parseIntField(r.FormValue("stock"))
	if err != nil {
		utils.ResponseBadRequest(w, "stock must be numeric", nil)
		return
	}

	req := &request.ProductRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Price:       price,
		Stock:       stock,
		Category:    strings.TrimSpace(r.FormValue("category")),
		Gender:      strings.TrimSpace(r.FormValue("gender")),
		Sizes:       r.FormValue("sizes"),
		Colors:      r.FormValue("colors"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imagePath, err := h.saveImage(file, header)
		if err != nil {
			h.log.Error("Failed to store uploaded image", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to store image")
			return
		}
		req.Image = imagePath
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", product)
}

// List handles GET /api/products with an optional gender filter
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	gender := r.URL.Query().Get("gender")

	products, err := h.service.List(r.Context(), gender)
	if err != nil {
		h.handleServiceError(w, err, "list products")
		return
	}

	if len(products) == 0 {
		utils.ResponseSuccess(w, "No products available", nil)
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetByID handles GET /api/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get product")
		return
	}
	if product == nil {
		utils.ResponseNotFound(w, "Product not found")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// Update handles PUT /api/products/{id} (multipart form, partial)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := &request.ProductUpdateRequest{}

	if v, ok := formField(r, "name"); ok {
		req.Name = &v
	}
	if v, ok := formField(r, "description"); ok {
		req.Description = &v
	}
	if v, ok := formField(r, "price"); ok {
		price, err := parseFloatField(v)
		if err != nil {
			utils.ResponseBadRequest(w, "price must be numeric", nil)
			return
		}
		req.Price = &price
	}
	if v, ok := formField(r, "stock"); ok {
		stock, err := parseIntField(v)
		if err != nil {
			utils.ResponseBadRequest(w, "stock must be numeric", nil)
			return
		}
		req.Stock = &stock
	}
	if v, ok := formField(r, "category"); ok {
		req.Category = &v
	}
	if v, ok := formField(r, "gender"); ok {
		req.Gender = &v
	}
	if v, ok := formField(r, "sizes"); ok {
		req.Sizes = &v
	}
	if v, ok := formField(r, "colors"); ok {
		req.Colors = &v
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imagePath, err := h.saveImage(file, header)
		if err != nil {
			h.log.Error("Failed to store uploaded image", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to store image")
			return
		}
		req.Image = imagePath
	}

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, err, "update product")
		return
	}
	if product == nil {
		utils.ResponseNotFound(w, "Product not found")
		return
	}

	utils.ResponseSuccess(w, "Product updated", product)
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "delete product")
		return
	}
	if !deleted {
		utils.ResponseNotFound(w, "Product not found")
		return
	}

	utils.ResponseSuccess(w, "Product deleted", nil)
}

// ServeUpload handles GET /api/products/uploads/{filename}
func (h *ProductHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	// Only bare filenames are served; anything with path components 404s.
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		utils.ResponseNotFound(w, "File not found")
		return
	}

	path := filepath.Join(h.uploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		utils.ResponseNotFound(w, "File not found")
		return
	}

	http.ServeFile(w, r, path)
}

// saveImage stores an uploaded file under the upload directory with a
// uniquely prefixed, sanitized name. Files with extensions outside the
// allow-list are ignored, matching the catalog add contract.
func (h *ProductHandler) saveImage(file multipart.File, header *multipart.FileHeader) (*string, error) {
	if header == nil || !utils.AllowedImageFile(header.Filename) {
		return nil, nil
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	stored := utils.UniqueFilename(header.Filename)
	path := filepath.Join(h.uploadDir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	imagePath := "/api/products/uploads/" + stored
	return &imagePath, nil
}

func formField(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[0]), true
}

func parseFloatField(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}

func parseIntField(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// handleServiceError maps service errors to HTTP responses
func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
