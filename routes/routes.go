package routes

import (
	"quickbite-backend/configs"
	"quickbite-backend/controllers"
	"quickbite-backend/middlewares"
	"quickbite-backend/pkg/latency"
	"quickbite-backend/pkg/session"
	"quickbite-backend/repository"
	"quickbite-backend/services"
	"quickbite-backend/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	delay := latency.None
	if cfg.SimulateLatency {
		delay = latency.Simulated()
	}
	sessions := session.NewFileStore(cfg.SessionFile)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, sessions, delay, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, couponRepo, delay)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, delay)
	restSvc := services.NewRestaurantService(restRepo, delay)
	menuSvc := services.NewMenuService(menuRepo, delay)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, menuSvc)
	tracker := ws.NewOrderTracker(orderSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/session", authCtrl.Session)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
	}

	// Browsing (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/popular", restCtrl.Popular)
	r.GET("/restaurants/search", restCtrl.Search)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menus", restCtrl.Menus)

	// Catalog management (requires login)
	catalog := r.Group("/restaurants", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		catalog.POST("", restCtrl.Create)
		catalog.PATCH("/:id", restCtrl.Update)
		catalog.DELETE("/:id", restCtrl.Delete)
	}

	// Cart (public, single shared cart)
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.GET("/summary", cartCtrl.Summary)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:menuId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:menuId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/coupon", cartCtrl.ApplyCoupon)
	}

	// Orders (requires login)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("", orderCtrl.List)
		orders.GET("/active", orderCtrl.Active)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
		orders.POST("/:id/rating", orderCtrl.Rate)
	}

	// Live tracking (token via query string for browser websockets)
	r.GET("/ws/orders/:id/track", middlewares.WSAuthMiddleware(cfg.JWTSecret), tracker.Stream)
}
