package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"

	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/store"
	"github.com/vetportal/vetportal-backend/internal/shared/config"
	"github.com/vetportal/vetportal-backend/internal/shared/database"
	"github.com/vetportal/vetportal-backend/internal/shared/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger()
	log.Printf("🚀 Starting api on port %s", cfg.Port)

	if cfg.DatabaseURL == "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			log.Fatalf("❌ Failed to create database directory: %v", err)
		}
	}

	db := database.NewDB(cfg.DatabaseURL, cfg.DBPath)
	defer db.Close()

	if err := database.Migrate(db.GORM); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	fileStore, err := store.New(cfg.SharedDir)
	if err != nil {
		log.Fatalf("❌ Failed to init shared store: %v", err)
	}

	if cfg.BackupSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.BackupSchedule, func() {
			if err := fileStore.Snapshot(); err != nil {
				utils.LogError("shared store snapshot failed", err, nil)
			}
		}); err != nil {
			log.Fatalf("❌ Invalid BACKUP_SCHEDULE %q: %v", cfg.BackupSchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	app := buildApp(cfg, db, fileStore)

	log.Printf("✅ api running at :%s", cfg.Port)
	log.Printf("📊 Invoice App: http://localhost:%s/app1", cfg.Port)
	log.Printf("💊 Medicines App: http://localhost:%s/app2", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
