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

	// ──── Step 2: Initialize Logger ────
	logger, err := logging.New(cfg, "generator")
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	defer logger.Sync()

	// Base64 inflates uploads by a third; leave headroom for the JSON wrapper.
	maxBodyBytes := cfg.MaxUploadBytes*4/3 + 1<<20

	// ──── Step 3: Initialize Gemini Client ────
	var generateHandler *handlers.GenerateHandler
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY environment variable is not set")
		generateHandler = handlers.NewGenerateHandler(nil, maxBodyBytes, logger)
	} else {
		geminiService, err := services.NewGeminiService(
			context.Background(),
			cfg.GeminiAPIKey,
			cfg.GeminiModel,
			services.NewFileExtractService(),
			logger,
		)
		if err != nil {
			logger.Fatal("Gemini client initialization failed", zap.Error(err))
		}
		defer geminiService.Close()
		logger.Info("Gemini client initialized", zap.String("model", cfg.GeminiModel))
		generateHandler = handlers.NewGenerateHandler(geminiService, maxBodyBytes, logger)
	}

	// ──── Step 4: Start HTTP Server ────
	r := router.NewGenerator(generateHandler, handlers.NewHealthHandler("RAM Chatbot Generation Service is running"), logger)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.GeneratorPort),
		Handler:     r,
		ReadTimeout: 60 * time.Second,
		IdleTimeout: 60 * time.Second,
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

	logger.Info("generation service ready", zap.String("addr", "http://localhost:"+cfg.GeneratorPort))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
