package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"`
	Total      int64  `json:"total"`
	Restaurant string `json:"restaurant"` // source restaurant name snapshot

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
