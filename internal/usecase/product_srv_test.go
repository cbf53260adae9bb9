package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/dto/request"
)

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, NormalizeList("S, M ,L"))
	assert.Equal(t, []string{"red"}, NormalizeList(",red,,"))
	assert.Empty(t, NormalizeList(""))
	assert.Empty(t, NormalizeList(" , , "))
}

func TestProductCreate_Roundtrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo, zap.NewNop())

	created, err := svc.Create(ctx, &request.ProductRequest{
		Name:        "Tee",
		Description: "Plain cotton tee",
		Price:       10,
		Stock:       5,
		Category:    "tops",
		Gender:      "men",
		Sizes:       "S,M, L",
		Colors:      "black, white",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Tee", got.Name)
	assert.Equal(t, 10.0, got.Price)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, []string{"S", "M", "L"}, got.Sizes)
	assert.Equal(t, []string{"black", "white"}, got.Colors)
	require.NotNil(t, got.Category)
	assert.Equal(t, "tops", *got.Category)
}

func TestProductCreate_MissingName(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo, zap.NewNop())

	_, err := svc.Create(ctx, &request.ProductRequest{Price: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.created)
}

func TestProductGetByID_MalformedIDIsAbsent(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newFakeProductRepo(), zap.NewNop())

	got, err := svc.GetByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductList_GenderFilter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo, zap.NewNop())

	_, err := svc.Create(ctx, &request.ProductRequest{Name: "Mens Tee", Gender: "men"})
	require.NoError(t, err)
	created, err := svc.Create(ctx, &request.ProductRequest{Name: "Womens Tee", Gender: "women"})
	require.NoError(t, err)

	women, err := svc.List(ctx, "women")
	require.NoError(t, err)
	require.Len(t, women, 1)
	assert.Equal(t, created.ID, women[0].ID)
	assert.Equal(t, "Womens Tee", women[0].Name)
}

func TestProductList_UnknownGenderIgnored(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo, zap.NewNop())

	_, err := svc.Create(ctx, &request.ProductRequest{Name: "Mens Tee", Gender: "men"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &request.ProductRequest{Name: "Womens Tee", Gender: "women"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "kids")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductUpdate_PartialFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo, zap.NewNop())

	created, err := svc.Create(ctx, &request.ProductRequest{
		Name:  "Tee",
		Price: 10,
		Sizes: "S,M",
	})
	require.NoError(t, err)

	newPrice := 12.5
	updated, err := svc.Update(ctx, created.ID, &request.ProductUpdateRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "Tee", updated.Name)
	assert.Equal(t, []string{"S", "M"}, updated.Sizes)
}

func TestProductUpdate_AbsentID(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newFakeProductRepo(), zap.NewNop())

	name := "New Name"
	updated, err := svc.Update(ctx, "not-a-uuid", &request.ProductUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestProductDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo, zap.NewNop())

	created, err := svc.Create(ctx, &request.ProductRequest{Name: "Tee"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.Delete(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, deleted)
}
