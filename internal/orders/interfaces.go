package orders

import (
	"context"

	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the orders and order_items tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
}
