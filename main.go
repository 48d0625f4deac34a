package main

import (
	"fmt"
	"log"

	"quickbite-backend/configs"
	"quickbite-backend/middlewares"
	"quickbite-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedUsers(); err != nil {
		log.Fatalf("seed users failed: %v", err)
	}
	if err := configs.SeedCoupons(); err != nil {
		log.Fatalf("seed coupons failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
