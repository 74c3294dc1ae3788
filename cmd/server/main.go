package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"devdash-backend/internal/config"
	"devdash-backend/internal/database"
	"devdash-backend/internal/routes"
	"devdash-backend/internal/secret"
	"devdash-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log)

	if secret.HasReferences(cfg) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		resolver, err := secret.NewAWSResolver(ctx, cfg.AWS.Region)
		if err == nil {
			err = secret.ResolveConfig(ctx, cfg, resolver)
		}
		cancel()
		if err != nil {
			logrus.Fatalf("Failed to resolve secrets: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to auto migrate: %v", err)
	}
	logrus.Info("Database migration complete")

	router := routes.Setup(context.Background(), db, cfg, routes.Options{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithField("addr", addr).Info("Server starting")
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
