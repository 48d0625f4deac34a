package repository

import (
	"quickbite-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// NextID returns max existing id + 1 (1 for an empty store). Orders are never
// deleted, so the sequence only moves forward.
func (r *OrderRepository) NextID(tx *gorm.DB) (uint, error) {
	var maxID uint
	err := tx.Model(&entity.Order{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

func (r *OrderRepository) ByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) All() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ActiveByUser(userID uint, statuses []entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("user_id = ? AND status IN ?", userID, statuses).
		Order("id DESC").Find(&orders).Error
	return orders, err
}
