package main

import (
	"log"
	"net/http"

	"github.com/atelierserenite/wellness-api/internal/cache"
	"github.com/atelierserenite/wellness-api/internal/config"
	dbpkg "github.com/atelierserenite/wellness-api/internal/db"
	"github.com/atelierserenite/wellness-api/internal/middleware"
	"github.com/atelierserenite/wellness-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg.RedisAddr)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
