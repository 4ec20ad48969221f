package models

import "github.com/shopspring/decimal"

// OrderItem freezes the catalog price a product had when the order was placed.
type OrderItem struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"column:order_id;not null"`
	ProductID       int64           `gorm:"column:product_id;not null"`
	Quantity        int64           `gorm:"column:quantity;not null"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase;type:numeric(12,2);not null"`
}

func (OrderItem) TableName() string { return "order_items" }
