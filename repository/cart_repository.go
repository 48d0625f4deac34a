package repository

import (
	"errors"

	"quickbite-backend/entity"

	"gorm.io/gorm"
)

// CartRepository backs the single process-wide cart. There is one cart, so
// queries carry no user scoping.
type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) Items() ([]entity.CartItem, error) {
	return r.Snapshot(r.DB)
}

// Snapshot reads all cart lines through tx, so checkout can read and clear
// inside one transaction.
func (r *CartRepository) Snapshot(tx *gorm.DB) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Order("id").Find(&items).Error
	return items, err
}

// ByMenuID looks an item up by its menu id; the cart treats the menu id as
// the line identifier. Returns gorm.ErrRecordNotFound when absent.
func (r *CartRepository) ByMenuID(menuID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Where("menu_id = ?", menuID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert merges row into the cart: same (menu, restaurant) pair bumps Qty,
// anything else is appended. Returns the stored line either way.
func (r *CartRepository) Upsert(tx *gorm.DB, row *entity.CartItem) (*entity.CartItem, error) {
	var exist entity.CartItem
	err := tx.Where("menu_id = ? AND restaurant_id = ?", row.MenuID, row.RestaurantID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		if err := tx.Save(&exist).Error; err != nil {
			return nil, err
		}
		return &exist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := tx.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *CartRepository) Save(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) Delete(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Unscoped().Delete(item).Error
}

func (r *CartRepository) Clear(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&entity.CartItem{}).Error
}
