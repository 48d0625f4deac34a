package controllers

import (
	"strconv"

	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	items, err := h.Svc.Items()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /cart/summary
func (h *CartController) Summary(c *gin.Context) {
	sum, err := h.Svc.Summary()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sum)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Add(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /cart/items/:menuId
func (h *CartController) UpdateQty(c *gin.Context) {
	menuID, err := strconv.ParseUint(c.Param("menuId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var body struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateQty(uint(menuID), body.Qty)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /cart/items/:menuId
func (h *CartController) RemoveItem(c *gin.Context) {
	menuID, err := strconv.ParseUint(c.Param("menuId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := h.Svc.Remove(uint(menuID))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// POST /cart/coupon
func (h *CartController) ApplyCoupon(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sum, err := h.Svc.ApplyCoupon(body.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, sum)
}
