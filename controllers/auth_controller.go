package controllers

import (
	"quickbite-backend/pkg/resp"
	"quickbite-backend/services"
	"quickbite-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Svc.Logout(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	user, err := a.Svc.GetProfile(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /auth/session — the persisted "current user" record, if any.
func (a *AuthController) Session(c *gin.Context) {
	user, ok := a.Svc.CurrentUser()
	if !ok {
		resp.OK(c, gin.H{"authenticated": false})
		return
	}
	resp.OK(c, gin.H{"authenticated": true, "user": user})
}
