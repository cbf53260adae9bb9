package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

// In-memory repository fakes used across service tests.

type fakeUserRepo struct {
	users   map[string]*entity.User
	created []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, exists := f.users[user.Email]; exists {
		return fmt.Errorf("duplicate email %s", user.Email)
	}
	f.users[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	created  []*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	all := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.created {
		if _, ok := f.products[p.ID]; ok {
			all = append(all, p)
		}
	}
	return all, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("product %s not found", product.ID.String())
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var matched []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

type fakeTokenManager struct{}

func (f *fakeTokenManager) Generate(identity utils.Identity) (string, error) {
	return "token-for-" + identity.Email + "-" + identity.Role, nil
}

func (f *fakeTokenManager) Parse(tokenString string) (utils.Identity, error) {
	return utils.Identity{}, fmt.Errorf("not implemented")
}
