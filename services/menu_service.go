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

type MenuService struct {
	Repo  *repository.MenuRepository
	Delay latency.Delayer
}

func NewMenuService(repo *repository.MenuRepository, d latency.Delayer) *MenuService {
	if d == nil {
		d = latency.None
	}
	return &MenuService{Repo: repo, Delay: d}
}

func (s *MenuService) ByRestaurant(restaurantID uint) ([]entity.Menu, error) {
	s.Delay.Wait()
	return s.Repo.ByRestaurant(restaurantID)
}

func (s *MenuService) ByID(id uint) (*entity.Menu, error) {
	s.Delay.Wait()
	m, err := s.Repo.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu %d: %w", id, apperr.ErrNotFound)
	}
	return m, err
}
