package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only on detail

	Status        OrderStatus `gorm:"size:32;not null" json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	EstimatedTime string      `json:"estimatedTime"`

	PlacedAt    time.Time  `json:"placedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`

	OrderItems []OrderItem `json:"items"`
}
