package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pyramid-party/server/internal/common/clock"
	"github.com/pyramid-party/server/internal/common/uuid"
	"github.com/pyramid-party/server/internal/deck"
	"github.com/pyramid-party/server/internal/gateway"
	"github.com/pyramid-party/server/internal/handlers/rest"
	"github.com/pyramid-party/server/internal/handlers/ws"
	gameRepo "github.com/pyramid-party/server/internal/repositories/game"
	gameService "github.com/pyramid-party/server/internal/services/game"
)

func main() {
	// Load .env when present; real deployments set the environment
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	repo, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	// Initialize the sync gateway
	gw, err := gateway.NewRedis(&gateway.Config{
		RedisClient: redisClient,
		GameRepo:    repo,
	})
	if err != nil {
		log.Fatalf("Failed to create gateway: %v", err)
	}

	// Initialize the game service
	svc, err := gameService.New(&gameService.Config{
		PeekWindow:    15 * time.Second,
		Gateway:       gw,
		Shuffler:      deck.New(),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize handlers
	wsHandler, err := ws.New(&ws.Config{
		GameService: svc,
		Gateway:     gw,
	})
	if err != nil {
		log.Fatalf("Failed to create websocket handler: %v", err)
	}

	restHandler, err := rest.New(&rest.Config{
		GameService: svc,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	restHandler.Register(mux)

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: mux,
	}

	go func() {
		log.Printf("Pyramid server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Run until interrupted
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// getEnv returns the environment variable or a default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
