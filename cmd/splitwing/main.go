package main

import (
	"context"
	"log"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"

	"github.com/splitwing/splitwing/adapters/codec"
	"github.com/splitwing/splitwing/adapters/events"
	"github.com/splitwing/splitwing/adapters/gateway"
	"github.com/splitwing/splitwing/adapters/vault"
	"github.com/splitwing/splitwing/api"
	"github.com/splitwing/splitwing/ports"
	"github.com/splitwing/splitwing/service"
	transport "github.com/splitwing/splitwing/transport/http"
)

func main() {
	apiURL := os.Getenv("SPLITWING_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	addr := os.Getenv("SPLITWING_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	// With REDIS_URL set, the session is shared across instances: the token
	// lives in Redis and transitions are published over Redis streams.
	// Otherwise the token is a local file and events are dropped.
	var tokenVault ports.TokenVault
	eventPub := events.NewNoopPublisher()

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)

		logger := watermill.NewStdLogger(false, false)
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			logger,
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}

		tokenVault = vault.NewRedisVault(redisClient)
		eventPub = events.NewWatermillPublisher(publisher)
	} else {
		tokenPath := os.Getenv("SPLITWING_TOKEN_FILE")
		if tokenPath == "" {
			var err error
			tokenPath, err = vault.DefaultTokenPath()
			if err != nil {
				log.Fatalf("Failed to resolve token path: %v", err)
			}
		}
		tokenVault = vault.NewFileVault(tokenPath)
	}

	tokenCodec := codec.NewJWTCodec()
	credGateway := gateway.NewHTTPGateway(apiURL)

	sessions := service.NewSessionService(tokenCodec, tokenVault, credGateway, eventPub)

	// Settle the persisted session before serving any route decision
	session := sessions.Resolve(context.Background())
	if session.Authenticated() {
		log.Printf("Resumed session for %s", session.Identity.Subject())
	}

	resources := api.NewClient(apiURL, sessions).
		OnUnauthorized(func(ctx context.Context) {
			if err := sessions.Logout(ctx); err != nil {
				log.Printf("Failed to drop rejected session: %v", err)
			}
		})

	router := transport.SetupRouter(sessions, resources)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
