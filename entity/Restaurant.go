package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	Cuisines     string  `json:"cuisines"` // comma separated, e.g. "North Indian,Chinese"
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	DeliveryTime string  `json:"deliveryTime"`
	MinimumOrder int64   `json:"minimumOrder"`
	CoverImage   string  `json:"coverImage"`
	IsOpen       bool    `gorm:"default:true" json:"isOpen"`

	Menus  []Menu  `json:"-"`
	Orders []Order `json:"-"`
}
