package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"chusu_backend/internal/app/router"
	"chusu_backend/internal/config"
	authadapters "chusu_backend/internal/feature/auth/adapters"
	authhandler "chusu_backend/internal/feature/auth/transport/handler"
	authusecase "chusu_backend/internal/feature/auth/usecase"
	fruitadapters "chusu_backend/internal/feature/fruits/adapters"
	fruithandler "chusu_backend/internal/feature/fruits/transport/handler"
	fruitusecase "chusu_backend/internal/feature/fruits/usecase"
	noteadapters "chusu_backend/internal/feature/notes/adapters"
	notehandler "chusu_backend/internal/feature/notes/transport/handler"
	noteusecase "chusu_backend/internal/feature/notes/usecase"
	reminderadapters "chusu_backend/internal/feature/reminders/adapters"
	reminderhandler "chusu_backend/internal/feature/reminders/transport/handler"
	reminderusecase "chusu_backend/internal/feature/reminders/usecase"
	"chusu_backend/internal/platform/cache"
	infradb "chusu_backend/internal/platform/db"
	jwtmw "chusu_backend/internal/platform/jwt"
	infraredis "chusu_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis (optional)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		slog.Warn("Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	fruitRepo := fruitadapters.NewFruitRepository(db)
	reminderRepo := reminderadapters.NewReminderRepository(db)
	noteRepo := noteadapters.NewNoteRepository(db)

	// Redisキャッシュでラップ
	cachedFruitRepo := cache.NewCachingFruitRepository(rdb, 0, fruitRepo, "fruits")

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, jwtmw.TokenLifetime)
	authUC := authusecase.NewAuthUsecase(userRepo, fruitRepo, reminderRepo, tokenGen)
	fruitUC := fruitusecase.NewFruitUsecase(cachedFruitRepo)
	reminderUC := reminderusecase.NewReminderUsecase(reminderRepo)
	noteUC := noteusecase.NewNoteUsecase(noteRepo)

	// Handler
	dev := cfg.IsDevelopment()
	authH := authhandler.NewAuthHandler(authUC, dev)
	fruitH := fruithandler.NewFruitHandler(fruitUC, dev)
	reminderH := reminderhandler.NewReminderHandler(reminderUC, dev)
	noteH := notehandler.NewNoteHandler(noteUC, dev)

	// ルータ生成
	r := router.NewRouter(cfg, db, authH, fruitH, reminderH, noteH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
