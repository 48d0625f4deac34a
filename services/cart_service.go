package services

import (
	"errors"
	"fmt"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/apperr"
	"quickbite-backend/pkg/latency"
	"quickbite-backend/repository"

	"gorm.io/gorm"
)

// Pricing rule, unified across cart summary and checkout: orders at or above
// the threshold ship free, everything else pays the flat fee; 9% tax applies
// always.
const (
	FreeDeliveryThreshold int64 = 300
	DeliveryFee           int64 = 40
	TaxRatePercent        int64 = 9
)

type CartService struct {
	DB         *gorm.DB
	Repo       *repository.CartRepository
	CouponRepo *repository.CouponRepository
	Delay      latency.Delayer
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.CouponRepository, d latency.Delayer) *CartService {
	if d == nil {
		d = latency.None
	}
	return &CartService{DB: db, Repo: cr, CouponRepo: pr, Delay: d}
}

type AddItemIn struct {
	MenuID         uint   `json:"menuId" binding:"required"`
	RestaurantID   uint   `json:"restaurantId" binding:"required"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unitPrice" binding:"min=0"`
	Qty            int    `json:"qty"`
	IsVeg          bool   `json:"isVeg"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	RestaurantName string `json:"restaurantName"`
}

type CartSummary struct {
	Items       []entity.CartItem `json:"items"`
	ItemCount   int               `json:"itemCount"`
	Subtotal    int64             `json:"subtotal"`
	DeliveryFee int64             `json:"deliveryFee"`
	Tax         int64             `json:"tax"`
	Total       int64             `json:"total"`
	Discount    int64             `json:"discount,omitempty"`
	CouponCode  string            `json:"couponCode,omitempty"`
}

// Items returns a snapshot of the cart.
func (s *CartService) Items() ([]entity.CartItem, error) {
	s.Delay.Wait()
	return s.Repo.Items()
}

// Add merges the incoming line into the cart: an existing (menu, restaurant)
// pair gets its quantity incremented, otherwise a new line is appended with
// quantity defaulted to 1. Name and price are taken from the caller verbatim.
func (s *CartService) Add(in *AddItemIn) (*entity.CartItem, error) {
	s.Delay.Wait()
	if in.Qty <= 0 {
		in.Qty = 1
	}

	row := &entity.CartItem{
		MenuID:         in.MenuID,
		RestaurantID:   in.RestaurantID,
		Name:           in.Name,
		UnitPrice:      in.UnitPrice,
		Qty:            in.Qty,
		IsVeg:          in.IsVeg,
		Description:    in.Description,
		Image:          in.Image,
		RestaurantName: in.RestaurantName,
	}

	var stored *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		stored, err = s.Repo.Upsert(tx, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// UpdateQty sets the quantity exactly. Zero or negative removes the line.
func (s *CartService) UpdateQty(menuID uint, qty int) (*entity.CartItem, error) {
	s.Delay.Wait()
	item, err := s.Repo.ByMenuID(menuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item not in cart: %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if qty <= 0 {
			return s.Repo.Delete(tx, item)
		}
		item.Qty = qty
		return s.Repo.Save(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) Remove(menuID uint) (*entity.CartItem, error) {
	s.Delay.Wait()
	item, err := s.Repo.ByMenuID(menuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item not in cart: %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Clear empties the cart. Idempotent.
func (s *CartService) Clear() error {
	s.Delay.Wait()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Clear(tx)
	})
}

func (s *CartService) Summary() (*CartSummary, error) {
	s.Delay.Wait()
	items, err := s.Repo.Items()
	if err != nil {
		return nil, err
	}
	return summarize(items), nil
}

// ApplyCoupon validates the code against the coupon table and returns the
// summary with the discount folded in. The total never drops below zero.
func (s *CartService) ApplyCoupon(code string) (*CartSummary, error) {
	s.Delay.Wait()
	coupon, err := s.CouponRepo.ByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCoupon
	}
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.Items()
	if err != nil {
		return nil, err
	}
	sum := summarize(items)

	if coupon.MinOrder > 0 && sum.Subtotal < coupon.MinOrder {
		return nil, fmt.Errorf("minimum order of %d required for this coupon: %w",
			coupon.MinOrder, apperr.ErrMinimumOrderNotMet)
	}

	var discount int64
	switch coupon.Type {
	case entity.CouponPercent:
		discount = roundPercent(sum.Subtotal, coupon.Value)
	default:
		discount = coupon.Value
	}

	sum.Discount = discount
	sum.CouponCode = coupon.Code
	sum.Total -= discount
	if sum.Total < 0 {
		sum.Total = 0
	}
	return sum, nil
}

func summarize(items []entity.CartItem) *CartSummary {
	var subtotal int64
	var count int
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Qty)
		count += it.Qty
	}

	fee := DeliveryFee
	if subtotal >= FreeDeliveryThreshold {
		fee = 0
	}
	tax := roundPercent(subtotal, TaxRatePercent)

	return &CartSummary{
		Items:       items,
		ItemCount:   count,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}

// roundPercent is amount*pct/100 rounded half-up to the nearest currency unit.
func roundPercent(amount, pct int64) int64 {
	return (amount*pct + 50) / 100
}
