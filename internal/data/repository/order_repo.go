package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
	"github.com/BackamDavid/ecommerce-app/pkg/database"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new order record into the database
func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, product_ids, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := or.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.ProductIDs,
		order.CreatedAt,
	)

	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID),
		)
		return fmt.Errorf("create order for %s: %w", order.UserID, err)
	}

	return nil
}

// FindByUser returns all orders whose user_id exactly matches the given
// string. No referential check against users is made.
func (or *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, product_ids, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := or.db.Query(ctx, query, userID)
	if err != nil {
		or.log.Error("Failed to get orders by user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find orders by user %s: %w", userID, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ProductIDs,
			&order.CreatedAt,
		)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}
