package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	handlerHttp "github.com/cowryhub/cowry-backend/internal/handler/http"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/config"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/directory"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/logger"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/uuidgen"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/validator"
	"github.com/cowryhub/cowry-backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := config.NewConfig()

	appLogger, err := logger.NewZapLogger(os.Getenv("GIN_MODE") != "release")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	validator.RegisterCustomValidators()

	dir, cleanup, err := buildDirectory(cfg)
	if err != nil {
		appLogger.Fatalf("Failed to initialize identity directory: %v", err)
	}
	defer cleanup()

	appValidator := validator.NewValidator()
	resolver := usecase.NewNicknameResolver(dir)

	authUsecase := usecase.NewAuthUsecase(dir, resolver, appValidator, appLogger)
	accountUsecase := usecase.NewAccountUsecase(dir, resolver, appValidator, appLogger)
	adminUsecase := usecase.NewAdminUsecase(dir, appLogger)

	engine := gin.Default()
	router := handlerHttp.NewRouter(authUsecase, accountUsecase, adminUsecase, cfg)
	router.SetupRoutes(engine)

	appLogger.Infof("Starting server on port %s (directory driver: %s)", cfg.Port, cfg.DirectoryDriver)
	if err := engine.Run(":" + cfg.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}

// buildDirectory wires the identity directory selected by DIRECTORY_DRIVER.
// The returned cleanup closes whatever connections the driver opened.
func buildDirectory(cfg *config.Config) (contract.IIdentityDirectory, func(), error) {
	switch cfg.DirectoryDriver {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, nil, err
		}
		users := client.Database(cfg.MongoDBName).Collection("identities")

		var revocations directory.IRevocationStore
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		if cfg.RedisURL != "" {
			opts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			redisClient := redis.NewClient(opts)
			revocations = directory.NewRedisRevocations(redisClient)
			cleanup = func() {
				_ = redisClient.Close()
				_ = client.Disconnect(context.Background())
			}
		} else {
			revocations = directory.NewMemoryRevocations()
		}

		sessions := directory.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, revocations)
		dir := directory.NewMongoDirectory(users, sessions, uuidgen.NewGenerator())
		if err := dir.EnsureIndexes(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		return dir, cleanup, nil

	default:
		dir := directory.NewClient(cfg.GoTrueURL, cfg.GoTrueServiceKey, cfg.DirectoryTimeout)
		return dir, func() {}, nil
	}
}
