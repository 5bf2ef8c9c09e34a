package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/joannaarruda/salao-ia-api/internal/config"
	dbpkg "github.com/joannaarruda/salao-ia-api/internal/db"
	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/routes"
	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

func main() {

	// .env é opcional (em produção as vars vêm do ambiente)
	_ = godotenv.Load()

	cfg := config.Load()

	if !timezone.IsValid(cfg.Timezone) {
		log.Fatalf("invalid SALON_TIMEZONE: %q", cfg.Timezone)
	}

	grid := domain.Grid{
		DayStart:    cfg.ScheduleDayStart,
		DayEnd:      cfg.ScheduleDayEnd,
		SlotMinutes: cfg.SlotMinutes,
	}
	if err := grid.Validate(); err != nil {
		log.Fatalf("invalid schedule grid: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// Redis fora do ar não derruba a API: o cache degrada para no-op.
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("redis unavailable (%v), availability cache disabled", err)
		rdb = nil
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
