package services

import (
	"fmt"
	"strings"
	"testing"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/latency"
	"quickbite-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database per test. shared cache keeps
// the same database visible across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Menu{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Coupon{},
	))
	return db
}

func seedCoupons(t *testing.T, db *gorm.DB) {
	t.Helper()
	coupons := []entity.Coupon{
		{Code: "SAVE50", Type: entity.CouponFlat, Value: 50},
		{Code: "PERCENT10", Type: entity.CouponPercent, Value: 10},
		{Code: "FIRSTORDER", Type: entity.CouponFlat, Value: 100, MinOrder: 300},
	}
	for i := range coupons {
		require.NoError(t, db.Create(&coupons[i]).Error)
	}
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewCouponRepository(db),
		latency.None)
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		latency.None)
}
