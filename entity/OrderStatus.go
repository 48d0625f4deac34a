package entity

// OrderStatus is the fixed delivery status enumeration. The happy path walks
// the five steps in order; "cancelled" is reachable from any non-terminal
// status. "delivered" and "cancelled" are terminal.
type OrderStatus string

const (
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusNearby         OrderStatus = "nearby"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPreparing, StatusOutForDelivery,
		StatusNearby, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
