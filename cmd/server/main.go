package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agenthands/mdm/internal/config"
	"github.com/agenthands/mdm/internal/core"
	"github.com/agenthands/mdm/internal/llm"
	"github.com/agenthands/mdm/internal/logging"
	"github.com/agenthands/mdm/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging)
	gin.SetMode(cfg.Server.Mode)

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		logger.Fatalf("Failed to initialize LLM client: %v", err)
	}

	m, err := core.NewMDM(llmClient, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize flows: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.NewServer(m, logger, cfg.Server).SetupRouter(),
	}

	go func() {
		logger.WithField("provider", cfg.LLM.Provider).WithField("model", cfg.LLM.Model).
			Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown error: %v", err)
	}
	if err := m.Close(); err != nil {
		logger.Errorf("Failed to close LLM client: %v", err)
	}
}
