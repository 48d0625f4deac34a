package repository

import (
	"strings"

	"quickbite-backend/entity"

	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

// ByCode matches case-insensitively; codes are stored upper-case.
func (r *CouponRepository) ByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.DB.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
