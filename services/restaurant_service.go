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

type RestaurantService struct {
	Repo  *repository.RestaurantRepository
	Delay latency.Delayer
}

func NewRestaurantService(repo *repository.RestaurantRepository, d latency.Delayer) *RestaurantService {
	if d == nil {
		d = latency.None
	}
	return &RestaurantService{Repo: repo, Delay: d}
}

func (s *RestaurantService) All() ([]entity.Restaurant, error) {
	s.Delay.Wait()
	return s.Repo.All()
}

func (s *RestaurantService) ByID(id uint) (*entity.Restaurant, error) {
	s.Delay.Wait()
	r, err := s.Repo.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("restaurant %d: %w", id, apperr.ErrNotFound)
	}
	return r, err
}

func (s *RestaurantService) Create(r *entity.Restaurant) (*entity.Restaurant, error) {
	s.Delay.Wait()
	if err := s.Repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Update(id uint, updates map[string]any) (*entity.Restaurant, error) {
	s.Delay.Wait()
	if err := s.Repo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.ByID(id)
}

func (s *RestaurantService) Delete(id uint) error {
	s.Delay.Wait()
	err := s.Repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("restaurant %d: %w", id, apperr.ErrNotFound)
	}
	return err
}

// SearchByCuisine returns the full list when no cuisines are given.
func (s *RestaurantService) SearchByCuisine(cuisines []string) ([]entity.Restaurant, error) {
	s.Delay.Wait()
	if len(cuisines) == 0 {
		return s.Repo.All()
	}

	seen := make(map[uint]bool)
	var out []entity.Restaurant
	for _, c := range cuisines {
		matched, err := s.Repo.ByCuisine(c)
		if err != nil {
			return nil, err
		}
		for _, r := range matched {
			if !seen[r.ID] {
				seen[r.ID] = true
				out = append(out, r)
			}
		}
	}
	return out, nil
}

// Popular lists up to ten restaurants rated 4.0 or better.
func (s *RestaurantService) Popular() ([]entity.Restaurant, error) {
	s.Delay.Wait()
	return s.Repo.Popular(4.0, 10)
}
