package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"art_backend/internal/app/router"
	artadapters "art_backend/internal/feature/art/adapters"
	arthandler "art_backend/internal/feature/art/transport/handler"
	artusecase "art_backend/internal/feature/art/usecase"
	typeadapters "art_backend/internal/feature/arttype/adapters"
	typehandler "art_backend/internal/feature/arttype/transport/handler"
	typeusecase "art_backend/internal/feature/arttype/usecase"
	authadapters "art_backend/internal/feature/auth/adapters"
	authhandler "art_backend/internal/feature/auth/transport/handler"
	authusecase "art_backend/internal/feature/auth/usecase"
	infradb "art_backend/internal/platform/db"
	"art_backend/internal/platform/imagekit"
	jwtmw "art_backend/internal/platform/jwt"
	infraredis "art_backend/internal/platform/redis"
)

func main() {
	// .env is a development convenience; production gets real env vars.
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] No .env file loaded:", err)
		}
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis backs only the login limiter, so the server runs without it.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without login throttling.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	artRepo := artadapters.NewArtGorm(db)
	typeRepo := typeadapters.NewTypeGorm(db)

	// Token service and image host client
	tokens := jwtmw.NewTokenService(os.Getenv("JWT_SECRET"))
	ikCfg := imagekit.LoadConfig()
	uploader := imagekit.NewClient(ikCfg, &http.Client{Timeout: ikCfg.Timeout})

	var limiter authusecase.LoginLimiter
	if rdb != nil {
		limiter = authadapters.NewLoginLimiterRedis(rdb, 0, 0)
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, limiter)
	artUC := artusecase.NewArtUsecase(artRepo, uploader)
	typeUC := typeusecase.NewTypeUsecase(typeRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	artH := arthandler.NewArtHandler(artUC)
	typeH := typehandler.NewTypeHandler(typeUC)

	guard := jwtmw.NewGuard(tokens, userRepo, artRepo)
	r := router.NewRouter(guard, authH, artH, typeH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
