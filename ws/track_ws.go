package ws

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"quickbite-backend/entity"
	"quickbite-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // CORS handled at the gin layer
}

// TrackUpdate is one frame on the tracking stream. Step is the order's
// position in the five-step delivery sequence, -1 when cancelled.
type TrackUpdate struct {
	OrderID     uint   `json:"orderId"`
	Status      string `json:"status"`
	Step        int    `json:"step"`
	Steps       int    `json:"steps"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// OrderTracker streams live status for a single order, reading the real
// order store instead of a canned fixture.
type OrderTracker struct {
	Orders   *services.OrderService
	Interval time.Duration
}

func NewOrderTracker(orders *services.OrderService) *OrderTracker {
	return &OrderTracker{Orders: orders, Interval: 2 * time.Second}
}

// GET /ws/orders/:id/track
func (t *OrderTracker) Stream(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := t.Orders.ByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// Read pump: we never expect frames from the client, but reading is the
	// only way to notice the peer going away on a hijacked connection.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Push the current state immediately, then on every change until the
	// order reaches a terminal status.
	last := order.Status
	if err := conn.WriteJSON(frame(order)); err != nil {
		return
	}

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for !last.Terminal() {
		select {
		case <-closed:
			return
		case <-ticker.C:
		}

		order, err = t.Orders.ByID(uint(id))
		if err != nil {
			return
		}
		if order.Status == last {
			continue
		}
		last = order.Status
		if err := conn.WriteJSON(frame(order)); err != nil {
			return
		}
	}
}

func frame(o *entity.Order) TrackUpdate {
	u := TrackUpdate{
		OrderID: o.ID,
		Status:  string(o.Status),
		Step:    services.StatusStep(o.Status),
		Steps:   len(services.StatusSequence()),
	}
	if o.CompletedAt != nil {
		u.CompletedAt = o.CompletedAt.Format(time.RFC3339)
	}
	return u
}
