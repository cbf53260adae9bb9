package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
)

func seedProduct(repo *fakeProductRepo, name string, price float64, stock int) *entity.Product {
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   name,
		Price:  price,
		Stock:  stock,
		Sizes:  []string{"S", "M"},
		Colors: []string{"black"},
	}
	repo.Create(context.Background(), product)
	return product
}

func TestOrderCreate_MixedValidAndInvalid(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	tee := seedProduct(productRepo, "Tee", 10, 5)

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	order, err := svc.Create(ctx, "buyer@example.com", []string{tee.ID.String(), "bogus"})
	require.NoError(t, err)

	assert.Len(t, order.Products, 1)
	assert.Equal(t, tee.ID.String(), order.Products[0])
	assert.Equal(t, "1 invalid product ID(s) were ignored.", order.Warning)
	assert.Equal(t, "buyer@example.com", order.UserID)

	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, []uuid.UUID{tee.ID}, orderRepo.orders[0].ProductIDs)
}

func TestOrderCreate_UnknownButWellFormedID(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	tee := seedProduct(productRepo, "Tee", 10, 5)

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	order, err := svc.Create(ctx, "buyer@example.com", []string{
		tee.ID.String(),
		uuid.NewString(), // parses but does not resolve
		"not-a-uuid",
	})
	require.NoError(t, err)

	assert.Len(t, order.Products, 1)
	assert.Equal(t, "2 invalid product ID(s) were ignored.", order.Warning)
}

func TestOrderCreate_AllValid_NoWarning(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	a := seedProduct(productRepo, "Tee", 10, 5)
	b := seedProduct(productRepo, "Hoodie", 30, 2)

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	order, err := svc.Create(ctx, "buyer@example.com", []string{a.ID.String(), b.ID.String()})
	require.NoError(t, err)

	assert.Len(t, order.Products, 2)
	assert.Empty(t, order.Warning)
}

func TestOrderCreate_AllInvalid_NothingPersisted(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	order, err := svc.Create(ctx, "buyer@example.com", []string{"bogus", uuid.NewString()})
	require.ErrorIs(t, err, ErrNoValidProducts)
	assert.Nil(t, order)

	assert.Empty(t, orderRepo.orders)
}

func TestOrderListByUser_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	tee := seedProduct(productRepo, "Tee", 10, 5)

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	_, err := svc.Create(ctx, "alice@example.com", []string{tee.ID.String()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob@example.com", []string{tee.ID.String()})
	require.NoError(t, err)

	aliceOrders, err := svc.ListByUser(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, aliceOrders, 1)
	assert.Equal(t, "alice@example.com", aliceOrders[0].UserID)

	nobody, err := svc.ListByUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

func TestOrderListByUser_ResolvesSnapshots(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	category := "tops"
	tee := seedProduct(productRepo, "Tee", 10, 5)
	tee.Category = &category

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	_, err := svc.Create(ctx, "buyer@example.com", []string{tee.ID.String()})
	require.NoError(t, err)

	views, err := svc.ListByUser(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Products, 1)

	snapshot := views[0].Products[0]
	assert.Equal(t, tee.ID.String(), snapshot.ID)
	assert.Equal(t, "Tee", snapshot.Name)
	assert.Equal(t, 10.0, snapshot.Price)
	assert.Equal(t, &category, snapshot.Category)
	assert.Equal(t, []string{"S", "M"}, snapshot.Sizes)
	assert.Equal(t, []string{"black"}, snapshot.Colors)
}

func TestOrderListByUser_DropsDeletedProducts(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	orderRepo := &fakeOrderRepo{}

	tee := seedProduct(productRepo, "Tee", 10, 5)
	hoodie := seedProduct(productRepo, "Hoodie", 30, 2)

	svc := NewOrderService(orderRepo, productRepo, zap.NewNop())

	_, err := svc.Create(ctx, "buyer@example.com", []string{tee.ID.String(), hoodie.ID.String()})
	require.NoError(t, err)

	// Product deleted after order placement
	_, err = productRepo.Delete(ctx, hoodie.ID)
	require.NoError(t, err)

	views, err := svc.ListByUser(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Products, 1)
	assert.Equal(t, tee.ID.String(), views[0].Products[0].ID)
}
