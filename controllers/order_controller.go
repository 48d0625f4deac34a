package controllers

import (
	"strconv"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// POST /orders/checkout — snapshot the cart into a new order and clear it.
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	order, err := h.Svc.Checkout(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orders, err := h.Svc.ByUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/active
func (h *OrderController) Active(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orders, err := h.Svc.Active(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.Svc.ByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(id, entity.OrderStatus(body.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.Svc.Cancel(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/rating
func (h *OrderController) Rate(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var body struct {
		Rating int    `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Rate(id, body.Rating, body.Review)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}
