package controllers

import (
	"errors"

	"quickbite-backend/pkg/apperr"
	"quickbite-backend/pkg/resp"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, apperr.ErrOrderClosed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrInvalidCoupon),
		errors.Is(err, apperr.ErrMinimumOrderNotMet),
		errors.Is(err, apperr.ErrInvalidRating),
		errors.Is(err, apperr.ErrNotDelivered),
		errors.Is(err, apperr.ErrEmptyCart),
		errors.Is(err, apperr.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
