package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. Prices are stored as numeric and never trusted from clients.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;not null"`
	Category    string          `gorm:"column:category;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Description *string         `gorm:"column:description"`
}

func (Product) TableName() string { return "products" }
