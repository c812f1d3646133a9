package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"chusu_backend/internal/config"
	authentity "chusu_backend/internal/feature/auth/domain/entity"
	fruitentity "chusu_backend/internal/feature/fruits/domain/entity"
	noteentity "chusu_backend/internal/feature/notes/domain/entity"
	reminderentity "chusu_backend/internal/feature/reminders/domain/entity"
)

// OpenDB connects to Postgres, retrying for up to 60 seconds so the
// server survives a database that comes up slightly later than it does.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := cfg.DB.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&fruitentity.Fruit{},
			&reminderentity.Reminder{},
			&noteentity.Note{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
