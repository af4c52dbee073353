package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/config"
	"github.com/iliyamo/health-tip-agent/internal/database"
	"github.com/iliyamo/health-tip-agent/internal/handler"
	"github.com/iliyamo/health-tip-agent/internal/middleware"
	"github.com/iliyamo/health-tip-agent/internal/queue"
	"github.com/iliyamo/health-tip-agent/internal/repository"
	"github.com/iliyamo/health-tip-agent/internal/router"
	"github.com/iliyamo/health-tip-agent/internal/scheduler"
	"github.com/iliyamo/health-tip-agent/internal/service"
	"github.com/iliyamo/health-tip-agent/internal/tips"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	// The tip store is built once here and passed to everything that reads
	// it; an empty store is a deployment defect caught before serving.
	store := tips.NewStore(tips.SeedTips(), cfg.TipsSlotFallback)
	if store.Len() == 0 {
		log.Fatal("tip store is empty; refusing to start")
	}

	deliveryRepo := repository.NewDeliveryRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	svc := service.NewDelivery(store, deliveryRepo, queue.PublishTipDelivered)

	// Redis is optional: without it the limiter and the response cache
	// silently become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterPublic(e, router.PublicHandlers{
		Tips:  handler.NewTipHandler(store),
		Daily: handler.NewDailyTipHandler(svc),
		A2A:   handler.NewA2AHandler(store, svc),
		Store: store,
	}, config.LoadCacheConfig(), rdb)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo, tokenRepo))
	router.RegisterAdmin(e, handler.NewDeliveryAdminHandler(deliveryRepo), cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartDeliveryConsumer(); err != nil {
				log.Printf("delivery consumer stopped: %v", err)
			}
		}()
	}

	if cfg.SchedulerEnabled {
		go scheduler.New(svc).Start(ctx)
	} else {
		log.Printf("scheduler disabled on this replica")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tips=%d)", addr, cfg.Env, store.Len())
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
