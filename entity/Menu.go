package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	IsVeg       bool   `json:"isVeg"`
	Image       string `json:"image"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload only on detail
}
