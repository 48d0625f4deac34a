package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`

	Orders []Order `json:"-"`
}
