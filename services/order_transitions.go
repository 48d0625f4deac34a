package services

import "quickbite-backend/entity"

// The happy-path delivery sequence the tracker walks. Cancelled sits outside
// the sequence and maps to step -1.
var statusSequence = []entity.OrderStatus{
	entity.StatusConfirmed,
	entity.StatusPreparing,
	entity.StatusOutForDelivery,
	entity.StatusNearby,
	entity.StatusDelivered,
}

// activeStatuses are the non-terminal delivery states an order can sit in.
var activeStatuses = []entity.OrderStatus{
	entity.StatusConfirmed,
	entity.StatusPreparing,
	entity.StatusOutForDelivery,
	entity.StatusNearby,
}

// StatusStep maps a status to its position in the delivery sequence.
func StatusStep(s entity.OrderStatus) int {
	for i, st := range statusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

func StatusSequence() []entity.OrderStatus {
	out := make([]entity.OrderStatus, len(statusSequence))
	copy(out, statusSequence)
	return out
}
