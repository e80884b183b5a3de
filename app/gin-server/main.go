package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rakhaanw/mindhaven/config"
	"github.com/rakhaanw/mindhaven/internal/api/handlers"
	"github.com/rakhaanw/mindhaven/internal/api/middleware"
	"github.com/rakhaanw/mindhaven/internal/api/routes"
	"github.com/rakhaanw/mindhaven/internal/cache"
	"github.com/rakhaanw/mindhaven/internal/logger"
	"github.com/rakhaanw/mindhaven/internal/models"
	"github.com/rakhaanw/mindhaven/internal/providers/llm"
	mongorepo "github.com/rakhaanw/mindhaven/internal/repositories/mongo"
	pgrepo "github.com/rakhaanw/mindhaven/internal/repositories/postgres"
	"github.com/rakhaanw/mindhaven/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// Init MongoDB (entries + chat threads)
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init PostgreSQL (user accounts)
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Init Redis (entry list cache)
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("Mongo index error: %v", err)
	}
	if err := config.PostgresDB.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Postgres migrate error: %v", err)
	}

	ctx := context.Background()
	gemini, err := llm.NewVertexGemini(ctx, cfg.GoogleProjectID, cfg.GoogleLocation, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Gemini init error: %v", err)
	}
	defer gemini.Close()

	db := config.MongoDatabase()
	entryRepo := mongorepo.NewEntryRepo(db)
	chatRepo := mongorepo.NewChatRepo(db)
	userRepo := pgrepo.NewUserRepo(config.PostgresDB)

	redisCache := cache.NewRedisCache(config.RedisClient)

	aiSvc := services.NewAIService(gemini, l, cfg.AITimeout)
	journalSvc := services.NewJournalService(entryRepo, aiSvc, redisCache, cfg.EntryCacheTTL, l)
	chatSvc := services.NewChatService(chatRepo, aiSvc)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, 0)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      handlers.NewAuthHandler(authSvc),
		Journal:   handlers.NewJournalHandler(journalSvc),
		Chat:      handlers.NewChatHandler(chatSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
