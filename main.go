package main

import (
	"github.com/Type-Of-Null/Silant-Skillfactory/config"
	"github.com/Type-Of-Null/Silant-Skillfactory/database"
	"github.com/Type-Of-Null/Silant-Skillfactory/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Загрузка переменных окружения из .env
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	gin.SetMode(cfg.Server.Mode)

	// Инициализация базы данных
	if err := database.InitDB(cfg); err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}

	// Учётная запись администратора
	if err := database.EnsureAdminUser(database.DB, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logrus.WithError(err).Fatal("failed to ensure admin user")
	}

	// Демонстрационные данные
	if cfg.Seed.Demo {
		if err := database.SeedDemoData(database.DB); err != nil {
			logrus.WithError(err).Fatal("failed to seed demo data")
		}
	}

	r := routes.SetupRoutes(cfg)

	logrus.WithField("port", cfg.Server.Port).Info("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
