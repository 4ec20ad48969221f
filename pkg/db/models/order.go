package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopassist-backend/pkg/enums"
)

// Order is a placed order. TotalAmount equals the sum of its items' price_at_purchase * quantity.
type Order struct {
	ID          int64             `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string            `gorm:"column:user_id;not null"`
	OrderDate   time.Time         `gorm:"column:order_date;not null"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount;type:numeric(32,2);not null"`
	Status      enums.OrderStatus `gorm:"column:status;not null;default:completed"`
	Items       []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }
