package controllers

import (
	"strconv"
	"strings"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc     *services.RestaurantService
	MenuSvc *services.MenuService
}

func NewRestaurantController(s *services.RestaurantService, m *services.MenuService) *RestaurantController {
	return &RestaurantController{Svc: s, MenuSvc: m}
}

func restaurantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return 0, false
	}
	return uint(id), true
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.All()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/popular
func (h *RestaurantController) Popular(c *gin.Context) {
	out, err := h.Svc.Popular()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/search?cuisine=Chinese,Thai
func (h *RestaurantController) Search(c *gin.Context) {
	var cuisines []string
	if q := c.Query("cuisine"); q != "" {
		for _, part := range strings.Split(q, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cuisines = append(cuisines, part)
			}
		}
	}

	out, err := h.Svc.SearchByCuisine(cuisines)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	r, err := h.Svc.ByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /restaurants/:id/menus
func (h *RestaurantController) Menus(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	// 404 for unknown restaurants rather than an empty list
	if _, err := h.Svc.ByID(id); err != nil {
		writeError(c, err)
		return
	}
	menus, err := h.MenuSvc.ByRestaurant(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// POST /restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var r entity.Restaurant
	if err := c.ShouldBindJSON(&r); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Create(&r)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}

	var body struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		Cuisines     *string  `json:"cuisines"`
		Rating       *float64 `json:"rating"`
		ReviewCount  *int     `json:"reviewCount"`
		DeliveryTime *string  `json:"deliveryTime"`
		MinimumOrder *int64   `json:"minimumOrder"`
		CoverImage   *string  `json:"coverImage"`
		IsOpen       *bool    `json:"isOpen"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Cuisines != nil {
		updates["cuisines"] = *body.Cuisines
	}
	if body.Rating != nil {
		updates["rating"] = *body.Rating
	}
	if body.ReviewCount != nil {
		updates["review_count"] = *body.ReviewCount
	}
	if body.DeliveryTime != nil {
		updates["delivery_time"] = *body.DeliveryTime
	}
	if body.MinimumOrder != nil {
		updates["minimum_order"] = *body.MinimumOrder
	}
	if body.CoverImage != nil {
		updates["cover_image"] = *body.CoverImage
	}
	if body.IsOpen != nil {
		updates["is_open"] = *body.IsOpen
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "no fields to update")
		return
	}

	out, err := h.Svc.Update(id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
