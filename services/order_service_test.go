package services

import (
	"testing"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, svc *OrderService, userID uint) *entity.Order {
	t.Helper()
	o, err := svc.Create(&CreateOrderIn{
		UserID: userID,
		Items: []OrderItemIn{
			{Name: "Margherita", UnitPrice: 300, Qty: 1, Restaurant: "Pizza Theatre"},
		},
		Subtotal: 300, Tax: 27, Total: 327,
	})
	require.NoError(t, err)
	return o
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)

	for i := uint(1); i <= 3; i++ {
		o := placeOrder(t, svc, 1)
		assert.Equal(t, i, o.ID)
	}

	o := placeOrder(t, svc, 1)
	assert.Equal(t, uint(4), o.ID)
	assert.Equal(t, entity.StatusConfirmed, o.Status)
	assert.Nil(t, o.CompletedAt)
	assert.Equal(t, "completed", o.PaymentStatus)
	assert.False(t, o.PlacedAt.IsZero())
}

func TestCreateRequiresItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)

	_, err := svc.Create(&CreateOrderIn{UserID: 1})
	assert.Error(t, err)
}

func TestUpdateStatusDeliveredStampsCompletedAt(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	o := placeOrder(t, svc, 1)

	o, err := svc.UpdateStatus(o.ID, entity.StatusPreparing)
	require.NoError(t, err)
	assert.Nil(t, o.CompletedAt, "only delivered stamps completion")

	o, err = svc.UpdateStatus(o.ID, entity.StatusDelivered)
	require.NoError(t, err)
	require.NotNil(t, o.CompletedAt)
	assert.False(t, o.CompletedAt.IsZero())
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)

	_, err := svc.UpdateStatus(42, entity.StatusPreparing)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	o := placeOrder(t, svc, 1)

	_, err := svc.UpdateStatus(o.ID, entity.OrderStatus("teleported"))
	assert.ErrorIs(t, err, apperr.ErrInvalidStatus)
}

func TestTerminalOrdersAreImmutable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)

	delivered := placeOrder(t, svc, 1)
	_, err := svc.UpdateStatus(delivered.ID, entity.StatusDelivered)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(delivered.ID, entity.StatusPreparing)
	assert.ErrorIs(t, err, apperr.ErrOrderClosed)

	cancelled := placeOrder(t, svc, 1)
	_, err = svc.Cancel(cancelled.ID)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(cancelled.ID, entity.StatusConfirmed)
	assert.ErrorIs(t, err, apperr.ErrOrderClosed)
}

func TestCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	o := placeOrder(t, svc, 1)

	o, err := svc.Cancel(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, o.Status)
	assert.Nil(t, o.CompletedAt)
}

func TestRate(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	o := placeOrder(t, svc, 1)

	_, err := svc.Rate(o.ID, 5, "great")
	assert.ErrorIs(t, err, apperr.ErrNotDelivered)

	_, err = svc.UpdateStatus(o.ID, entity.StatusDelivered)
	require.NoError(t, err)

	_, err = svc.Rate(o.ID, 0, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidRating)
	_, err = svc.Rate(o.ID, 6, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidRating)

	rated, err := svc.Rate(o.ID, 4, "good, a bit late")
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 4, *rated.Rating)
	assert.Equal(t, "good, a bit late", rated.Review)

	_, err = svc.Rate(99, 4, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestActiveOrders(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)

	statuses := []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusOutForDelivery,
		entity.StatusNearby,
		entity.StatusDelivered,
		entity.StatusCancelled,
	}
	for _, st := range statuses {
		o := placeOrder(t, svc, 1)
		if st != entity.StatusConfirmed {
			_, err := svc.UpdateStatus(o.ID, st)
			require.NoError(t, err)
		}
	}
	// another user's order must not appear
	placeOrder(t, svc, 2)

	active, err := svc.Active(1)
	require.NoError(t, err)
	require.Len(t, active, 4)
	for _, o := range active {
		assert.False(t, o.Status.Terminal())
		assert.Equal(t, uint(1), o.UserID)
	}
}

func TestCheckoutFromCart(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(t, db)
	svc := newOrderService(t, db)

	_, err := cartSvc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Curry", UnitPrice: 100, Qty: 2, RestaurantName: "Spice Garden"})
	require.NoError(t, err)
	_, err = cartSvc.Add(&AddItemIn{MenuID: 2, RestaurantID: 1, Name: "Biryani", UnitPrice: 150, Qty: 1, RestaurantName: "Spice Garden"})
	require.NoError(t, err)

	order, err := svc.Checkout(1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, entity.StatusConfirmed, order.Status)
	assert.Equal(t, int64(350), order.Subtotal)
	assert.Equal(t, int64(0), order.DeliveryFee)
	assert.Equal(t, int64(32), order.Tax)
	assert.Equal(t, int64(382), order.Total)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, "Curry", order.OrderItems[0].Name)
	assert.Equal(t, "Spice Garden", order.OrderItems[0].Restaurant)
	assert.Equal(t, int64(200), order.OrderItems[0].Total)

	// checkout cleared the cart
	items, err := cartSvc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)

	_, err := svc.Checkout(1)
	assert.ErrorIs(t, err, apperr.ErrEmptyCart)
}

func TestStatusStep(t *testing.T) {
	assert.Equal(t, 0, StatusStep(entity.StatusConfirmed))
	assert.Equal(t, 1, StatusStep(entity.StatusPreparing))
	assert.Equal(t, 2, StatusStep(entity.StatusOutForDelivery))
	assert.Equal(t, 3, StatusStep(entity.StatusNearby))
	assert.Equal(t, 4, StatusStep(entity.StatusDelivered))
	assert.Equal(t, -1, StatusStep(entity.StatusCancelled))
}
