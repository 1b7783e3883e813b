package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Type-Of-Null/Silant-Skillfactory/config"
	"github.com/Type-Of-Null/Silant-Skillfactory/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB открывает подключение к БД и выполняет миграцию схемы.
// Схема создаётся при старте, отдельного инструмента миграций нет.
func InitDB(cfg *config.Config) error {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Moscow",
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.Path)
	default:
		return fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = db
	logrus.WithField("driver", cfg.Database.Driver).Info("database connected and migrated")
	return nil
}

// Tables возвращает имена таблиц текущей схемы
func Tables() ([]string, error) {
	return DB.Migrator().GetTables()
}
