package entity

import (
	"gorm.io/gorm"
)

// CartItem is a line in the single process-wide cart. Lines are deduplicated
// by (menu, restaurant): adding the same pair again bumps Qty instead of
// appending. Name/price are snapshots taken at add time, not live menu refs.
type CartItem struct {
	gorm.Model
	MenuID       uint `gorm:"uniqueIndex:idx_cart_menu_restaurant" json:"menuId"`
	RestaurantID uint `gorm:"uniqueIndex:idx_cart_menu_restaurant" json:"restaurantId"`

	Name           string `json:"name"`
	UnitPrice      int64  `json:"unitPrice"`
	Qty            int    `json:"qty"` // always >= 1; 0 means the row is deleted
	IsVeg          bool   `json:"isVeg"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	RestaurantName string `json:"restaurantName"`
}
