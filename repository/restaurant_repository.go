package repository

import (
	"quickbite-backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) All() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) ByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RestaurantRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Restaurant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ByCuisine matches the comma-separated cuisines column.
func (r *RestaurantRepository) ByCuisine(cuisine string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("cuisines LIKE ?", "%"+cuisine+"%").Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Popular(minRating float64, limit int) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("rating >= ?", minRating).
		Order("rating DESC").Limit(limit).Find(&out).Error
	return out, err
}
