// cmd/api/main.go
package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"agribridge-api-server/config"
	"agribridge-api-server/internal/api/routes"
	"agribridge-api-server/internal/database"
	"agribridge-api-server/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// .env is optional; deployments usually set the variables directly.
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}

	client, err := database.Connect(cfg.Mongo.URI)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Error disconnecting from MongoDB")
		}
	}()

	db := client.Database(cfg.Mongo.DBName)

	if cfg.Server.SeedDemo {
		if err := database.SeedDemoData(db, log); err != nil {
			log.WithError(err).Warn("Demo seeding failed")
		}
	}

	st := store.New(db)
	router := routes.SetupRouter(st, log)

	log.WithField("port", cfg.Server.Port).Info("Starting AgriBridge API server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("Failed to run server")
	}
}
