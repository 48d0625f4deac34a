package apperr

import "errors"

// Sentinel errors shared across services. Controllers map these onto HTTP
// statuses with errors.Is; messages are safe to show to the user.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCoupon      = errors.New("invalid coupon code")
	ErrMinimumOrderNotMet = errors.New("minimum order not met")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrNotDelivered       = errors.New("order has not been delivered yet")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrOrderClosed        = errors.New("order is already closed")
)
