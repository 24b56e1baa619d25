package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopledesk/workforce-api/internal/api"
	"github.com/peopledesk/workforce-api/internal/core/ports"
	"github.com/peopledesk/workforce-api/internal/core/service"
	"github.com/peopledesk/workforce-api/internal/infrastructure/config"
	"github.com/peopledesk/workforce-api/internal/infrastructure/crypto"
	"github.com/peopledesk/workforce-api/internal/infrastructure/db/memory"
	mongodb "github.com/peopledesk/workforce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peopledesk/workforce-api/internal/infrastructure/db/redis"
	"github.com/peopledesk/workforce-api/internal/infrastructure/queue"
	"github.com/peopledesk/workforce-api/internal/infrastructure/seed"
	"github.com/peopledesk/workforce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	hasher := crypto.NewBcryptHasher(bcrypt.DefaultCost)

	// --- Persistence backend ---
	var (
		userRepo     ports.UserRepository
		employeeRepo ports.EmployeeRepository
		auditSink    ports.AuditSink
		mongoDB      *mongo.Database
	)
	switch cfg.Store.Backend {
	case "mongo":
		_, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		users := mongodb.NewUserRepository(db)
		employees := mongodb.NewEmployeeRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo user indexes failed")
		}
		if err := employees.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo employee indexes failed")
		}
		userRepo, employeeRepo = users, employees
		auditSink = mongodb.NewAuditRepository(db)
		mongoDB = db
	default:
		userRepo = memory.NewUserRepository()
		employeeRepo = memory.NewEmployeeRepository()
		auditSink = queue.NewLogSink(log)
	}

	// --- Login throttle (optional) ---
	var throttle ports.LoginThrottle
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		throttle = redisdb.NewLoginThrottle(client)
		redisClient = client
	}

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(0, auditSink, log)
	dispatcher.Start(ctx)

	// --- Seed data ---
	if err := seed.Users(ctx, cfg.Store.SeedFile, userRepo, hasher); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, hasher, throttle, service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL(),
	}, log)
	employeeService := service.NewEmployeeService(employeeRepo, dispatcher, log)
	userService := service.NewSystemUserService(userRepo, dispatcher, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:     authService,
		EmployeeService: employeeService,
		UserService:     userService,
		JWTSecret:       cfg.JWT.Secret,
		Mongo:           mongoDB,
		Redis:           redisClient,
		Log:             log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Store.Backend).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
