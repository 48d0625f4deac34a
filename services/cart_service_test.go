package services

import (
	"testing"

	"quickbite-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesByMenuAndRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	first, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Margherita", UnitPrice: 300, Qty: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Qty)

	merged, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Margherita", UnitPrice: 300, Qty: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, merged.Qty)

	// Same menu id from a different restaurant is a separate line.
	_, err = svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 2, Name: "Noodles", UnitPrice: 160})
	require.NoError(t, err)

	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Qty)
	assert.Equal(t, 1, items[1].Qty, "quantity defaults to 1")
}

func TestAddAcceptsCallerValuesVerbatim(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	item, err := svc.Add(&AddItemIn{MenuID: 7, RestaurantID: 1, Name: "", UnitPrice: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.UnitPrice)
	assert.Equal(t, 1, item.Qty)
}

func TestUpdateQty(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Naan", UnitPrice: 40, Qty: 2})
	require.NoError(t, err)

	item, err := svc.UpdateQty(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Qty, "quantity is set, not incremented")

	_, err = svc.UpdateQty(99, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateQtyZeroOrNegativeRemoves(t *testing.T) {
	cases := map[string]int{"zero": 0, "negative": -1}
	for name, qty := range cases {
		t.Run(name, func(t *testing.T) {
			db := newTestDB(t)
			svc := newCartService(t, db)

			_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Naan", UnitPrice: 40})
			require.NoError(t, err)

			removed, err := svc.UpdateQty(1, qty)
			require.NoError(t, err)
			assert.Equal(t, uint(1), removed.MenuID)

			items, err := svc.Items()
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestRemoveTwiceFailsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 3, RestaurantID: 1, Name: "Garlic Bread", UnitPrice: 120})
	require.NoError(t, err)

	removed, err := svc.Remove(3)
	require.NoError(t, err)
	assert.Equal(t, "Garlic Bread", removed.Name)

	_, err = svc.Remove(3)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestClearIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Naan", UnitPrice: 40})
	require.NoError(t, err)

	require.NoError(t, svc.Clear())
	require.NoError(t, svc.Clear())

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Regression fixture: 100x2 + 150x1 => subtotal 350, free delivery, 9% tax
// rounded half-up = 32, total 382.
func TestSummaryFixture(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Curry", UnitPrice: 100, Qty: 2})
	require.NoError(t, err)
	_, err = svc.Add(&AddItemIn{MenuID: 2, RestaurantID: 1, Name: "Biryani", UnitPrice: 150, Qty: 1})
	require.NoError(t, err)

	sum, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum.Subtotal)
	assert.Equal(t, int64(0), sum.DeliveryFee)
	assert.Equal(t, int64(32), sum.Tax)
	assert.Equal(t, int64(382), sum.Total)
	assert.Equal(t, 3, sum.ItemCount)
}

func TestSummaryChargesDeliveryBelowThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Noodles", UnitPrice: 100, Qty: 1})
	require.NoError(t, err)

	sum, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(100), sum.Subtotal)
	assert.Equal(t, int64(40), sum.DeliveryFee)
	assert.Equal(t, int64(9), sum.Tax)
	assert.Equal(t, int64(149), sum.Total)
}

func TestApplyCouponMinimumOrder(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Chilli Chicken", UnitPrice: 250, Qty: 1})
	require.NoError(t, err)

	_, err = svc.ApplyCoupon("FIRSTORDER")
	require.ErrorIs(t, err, apperr.ErrMinimumOrderNotMet)
	assert.Contains(t, err.Error(), "300", "message names the threshold")
}

func TestApplyCouponFlat(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Curry", UnitPrice: 100, Qty: 2})
	require.NoError(t, err)
	_, err = svc.Add(&AddItemIn{MenuID: 2, RestaurantID: 1, Name: "Biryani", UnitPrice: 150, Qty: 1})
	require.NoError(t, err)

	sum, err := svc.ApplyCoupon("firstorder") // case-insensitive
	require.NoError(t, err)
	assert.Equal(t, int64(100), sum.Discount)
	assert.Equal(t, "FIRSTORDER", sum.CouponCode)
	assert.Equal(t, int64(282), sum.Total)
}

func TestApplyCouponPercent(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Biryani", UnitPrice: 350, Qty: 1})
	require.NoError(t, err)

	sum, err := svc.ApplyCoupon("PERCENT10")
	require.NoError(t, err)
	assert.Equal(t, int64(35), sum.Discount)
	assert.Equal(t, int64(347), sum.Total)
}

func TestApplyCouponUnknownCode(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Naan", UnitPrice: 40, Qty: 1})
	require.NoError(t, err)

	_, err = svc.ApplyCoupon("NOPE")
	assert.ErrorIs(t, err, apperr.ErrInvalidCoupon)
}

func TestApplyCouponTotalNeverNegative(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	svc := newCartService(t, db)

	_, err := svc.Add(&AddItemIn{MenuID: 1, RestaurantID: 1, Name: "Papad", UnitPrice: 5, Qty: 1})
	require.NoError(t, err)

	// subtotal 5 + fee 40 + tax 0 = 45; flat 50 discount floors at zero
	sum, err := svc.ApplyCoupon("SAVE50")
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.Total)
}
