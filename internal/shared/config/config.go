package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	DatabaseURL    string
	DBPath         string
	SharedDir      string
	App1Public     string
	App2Public     string
	BackupSchedule string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBPath:         os.Getenv("DB_PATH"),
		SharedDir:      os.Getenv("SHARED_DIR"),
		App1Public:     os.Getenv("APP1_PUBLIC"),
		App2Public:     os.Getenv("APP2_PUBLIC"),
		BackupSchedule: os.Getenv("BACKUP_SCHEDULE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "app1/invoice_app.db"
	}
	if cfg.SharedDir == "" {
		cfg.SharedDir = "shared"
	}
	if cfg.App1Public == "" {
		cfg.App1Public = "app1/public"
	}
	if cfg.App2Public == "" {
		cfg.App2Public = "app2/public"
	}
	if cfg.BackupSchedule == "" {
		cfg.BackupSchedule = "@daily"
	}

	return cfg
}
