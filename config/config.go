package config

import "os"

// Config конфигурация приложения
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Admin    AdminConfig
	Seed     SeedConfig

	// StrictShipmentDate включает строгий разбор даты отгрузки при создании
	// машины. По умолчанию сохраняется историческое поведение: нечитаемая
	// дата молча превращается в отсутствующую.
	StrictShipmentDate bool
}

// DatabaseConfig параметры подключения к БД
type DatabaseConfig struct {
	Driver   string // postgres или sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // путь к файлу для sqlite
}

// ServerConfig параметры HTTP-сервера
type ServerConfig struct {
	Port string
	Mode string
}

// AdminConfig учётные данные для автосоздания администратора
type AdminConfig struct {
	Username string
	Password string
}

// SeedConfig управление заполнением демо-данными
type SeedConfig struct {
	Demo bool
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "silant"),
			Path:     getEnv("DB_PATH", "silant.db"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Seed: SeedConfig{
			Demo: getEnvBool("SEED_DEMO_DATA", false),
		},
		StrictShipmentDate: getEnvBool("STRICT_SHIPMENT_DATE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes":
		return true
	case "0", "false", "FALSE", "False", "no":
		return false
	}
	return defaultValue
}
