package entity

import (
	"gorm.io/gorm"
)

const (
	CouponFlat    = "flat"
	CouponPercent = "percent"
)

type Coupon struct {
	gorm.Model
	Code     string `gorm:"size:50;uniqueIndex;not null" json:"code"` // stored upper-case
	Detail   string `json:"detail"`
	Type     string `gorm:"not null" json:"type"` // flat | percent
	Value    int64  `json:"value"`
	MinOrder int64  `json:"minOrder"` // 0 = no threshold
}
