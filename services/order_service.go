package services

import (
	"errors"
	"fmt"
	"time"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/apperr"
	"quickbite-backend/pkg/latency"
	"quickbite-backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Delay    latency.Delayer
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, d latency.Delayer) *OrderService {
	if d == nil {
		d = latency.None
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Delay: d}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"`
	Restaurant string `json:"restaurant"`
}

type CreateOrderIn struct {
	UserID        uint          `json:"userId"`
	Items         []OrderItemIn `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	DeliveryFee   int64         `json:"deliveryFee"`
	Tax           int64         `json:"tax"`
	Discount      int64         `json:"discount"`
	Total         int64         `json:"total"`
	EstimatedTime string        `json:"estimatedTime"`
}

// ----- Create -----

// Create stores a new order from an already-priced payload. The id is always
// max existing id + 1, the status is forced to confirmed and payment is
// marked completed; whatever status the caller put in the payload is ignored.
func (s *OrderService) Create(in *CreateOrderIn) (*entity.Order, error) {
	s.Delay.Wait()
	if len(in.Items) == 0 {
		return nil, errors.New("items is required")
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}

		order := entity.Order{
			Subtotal:      in.Subtotal,
			Discount:      in.Discount,
			DeliveryFee:   in.DeliveryFee,
			Tax:           in.Tax,
			Total:         in.Total,
			UserID:        in.UserID,
			Status:        entity.StatusConfirmed,
			PaymentStatus: "completed",
			EstimatedTime: in.EstimatedTime,
			PlacedAt:      time.Now(),
		}
		order.ID = id
		for _, it := range in.Items {
			order.OrderItems = append(order.OrderItems, entity.OrderItem{
				Name:       it.Name,
				UnitPrice:  it.UnitPrice,
				Qty:        it.Qty,
				Total:      it.UnitPrice * int64(it.Qty),
				Restaurant: it.Restaurant,
			})
		}

		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Checkout turns the current cart into an order and clears the cart, all in
// one transaction so a concurrent cart mutation cannot slip between the read
// and the clear.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	s.Delay.Wait()

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.Snapshot(tx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperr.ErrEmptyCart
		}

		sum := summarize(items)

		id, err := s.Repo.NextID(tx)
		if err != nil {
			return err
		}

		order := entity.Order{
			Subtotal:      sum.Subtotal,
			DeliveryFee:   sum.DeliveryFee,
			Tax:           sum.Tax,
			Total:         sum.Total,
			UserID:        userID,
			Status:        entity.StatusConfirmed,
			PaymentStatus: "completed",
			EstimatedTime: "25-30 minutes",
			PlacedAt:      time.Now(),
		}
		order.ID = id
		for _, it := range items {
			order.OrderItems = append(order.OrderItems, entity.OrderItem{
				Name:       it.Name,
				UnitPrice:  it.UnitPrice,
				Qty:        it.Qty,
				Total:      it.UnitPrice * int64(it.Qty),
				Restaurant: it.RestaurantName,
			})
		}

		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		if err := s.CartRepo.Clear(tx); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Transitions -----

// UpdateStatus sets the status without walking a transition table; callers
// are trusted to move forward sensibly. Terminal orders are immutable.
// Reaching delivered stamps CompletedAt.
func (s *OrderService) UpdateStatus(id uint, status entity.OrderStatus) (*entity.Order, error) {
	s.Delay.Wait()
	if !status.Valid() {
		return nil, fmt.Errorf("%q: %w", status, apperr.ErrInvalidStatus)
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
			}
			return err
		}
		if o.Status.Terminal() {
			return fmt.Errorf("order %d is %s: %w", id, o.Status, apperr.ErrOrderClosed)
		}

		o.Status = status
		if status == entity.StatusDelivered {
			now := time.Now()
			o.CompletedAt = &now
		}
		if err := s.Repo.Save(tx, &o); err != nil {
			return err
		}
		out = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) Cancel(id uint) (*entity.Order, error) {
	return s.UpdateStatus(id, entity.StatusCancelled)
}

// Rate stores a 1-5 star rating with an optional review. Only delivered
// orders can be rated.
func (s *OrderService) Rate(id uint, rating int, review string) (*entity.Order, error) {
	s.Delay.Wait()
	if rating < 1 || rating > 5 {
		return nil, apperr.ErrInvalidRating
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
			}
			return err
		}
		if o.Status != entity.StatusDelivered {
			return apperr.ErrNotDelivered
		}

		o.Rating = &rating
		o.Review = review
		if err := s.Repo.Save(tx, &o); err != nil {
			return err
		}
		out = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Reads -----

func (s *OrderService) All() ([]entity.Order, error) {
	s.Delay.Wait()
	return s.Repo.All()
}

func (s *OrderService) ByID(id uint) (*entity.Order, error) {
	s.Delay.Wait()
	o, err := s.Repo.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	return o, err
}

func (s *OrderService) ByUser(userID uint) ([]entity.Order, error) {
	s.Delay.Wait()
	return s.Repo.ByUser(userID)
}

// Active returns the user's orders still in flight: confirmed, preparing,
// out_for_delivery or nearby.
func (s *OrderService) Active(userID uint) ([]entity.Order, error) {
	s.Delay.Wait()
	return s.Repo.ActiveByUser(userID, activeStatuses)
}
