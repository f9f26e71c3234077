package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/config"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/handlers"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/logging"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/router"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("✗ Invalid configuration: %v", err)
	}

	// ──── Step 2: Initialize Logger ────
	logger, err := logging.New(cfg, "relay")
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting RAM Chatbot API",
		zap.String("env", cfg.Env),
		zap.String("generator_url", cfg.GeneratorURL),
		zap.Duration("generator_timeout", cfg.GeneratorTimeout),
		zap.String("frontend_url", cfg.FrontendURL),
	)

	// ──── Step 3: Initialize Handlers ────
	generatorClient := services.NewGeneratorClient(cfg.GeneratorURL, cfg.GeneratorTimeout)
	chatHandler := handlers.NewChatHandler(generatorClient, cfg.MaxUploadBytes, logger)
	healthHandler := handlers.NewHealthHandler("RAM Chatbot API is running")

	// ──── Step 4: Start HTTP Server ────
	r := router.NewRelay(chatHandler, healthHandler, logger, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 60 * time.Second,
		// Must outlast the outbound call to the generation service.
		WriteTimeout: cfg.GeneratorTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("RAM Chatbot API ready", zap.String("addr", "http://localhost:"+cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
