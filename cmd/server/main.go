package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"contact_backend/internal/app/di"
	"contact_backend/internal/app/router"
	authadapters "contact_backend/internal/feature/auth/adapters"
	authhandler "contact_backend/internal/feature/auth/transport/handler"
	authusecase "contact_backend/internal/feature/auth/usecase"
	contactadapters "contact_backend/internal/feature/contacts/adapters"
	contacthandler "contact_backend/internal/feature/contacts/transport/handler"
	contactusecase "contact_backend/internal/feature/contacts/usecase"
	"contact_backend/internal/platform/cache"
	infradb "contact_backend/internal/platform/db"
	infraredis "contact_backend/internal/platform/redis"
	"contact_backend/internal/platform/token"
	"contact_backend/internal/shared/ratelimiter"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to MySQL, contact lists uncached.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Token signing
	tokenCfg := token.LoadConfig()
	if tokenCfg.Secret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}
	codec := token.NewCodec(tokenCfg.Secret)

	// Repository
	accountRepo := authadapters.NewAccountMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	contactRepo := contactadapters.NewContactMySQL(db)

	// Wrap the contact repository in a Redis cache
	cachedContactRepo := cache.NewCachingContactRepository(rdb, 0, contactRepo, "contacts")

	// Usecase
	sessionAuthority := authusecase.NewSessionAuthority(sessionRepo, codec, authusecase.LoadSessionConfig())
	authUC := authusecase.NewAuthUsecase(accountRepo, authusecase.NewBcryptHasher(), sessionAuthority)
	contactsUC := contactusecase.NewContactsUsecase(cachedContactRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, ratelimiter.NewLoginLimiter())
	contactH := contacthandler.NewContactHandler(contactsUC)

	// Router
	r := router.NewRouter(authH, contactH, sessionAuthority)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
