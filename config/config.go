package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"zip-league-api/packages/core/rating"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env          string
		Port         string
		AllowOrigins []string
		AdminAPIKey  string
	}
	DB struct {
		Driver     string // postgres or sqlite
		Host       string
		Port       string
		User       string
		Password   string
		Name       string
		SSLMode    string
		MaxConns   int
		SQLitePath string
	}
	Rating struct {
		Skill rating.SkillConfig
		Decay rating.DecayConfig
	}
	Scheduler struct {
		DriftCheckSpec string
	}
}

// Global DB instance, set by ConnectDatabase.
var DB *gorm.DB

var (
	appConfig *Config
	initErr   error
	once      sync.Once
)

// LoadConfig reads the configuration from the environment, loading a .env
// file first when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.AllowOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
	cfg.App.AdminAPIKey = getEnv("ADMIN_API_KEY", "")

	cfg.DB.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "zip_league")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.SQLitePath = getEnv("SQLITE_PATH", "zip_league.db")

	var err error
	if cfg.DB.MaxConns, err = getEnvAsInt("DB_MAX_CONNS", 10); err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	skill := rating.DefaultSkillConfig()
	if skill.Mean, err = getEnvAsFloat("SKILL_MEAN", skill.Mean); err != nil {
		return nil, fmt.Errorf("invalid SKILL_MEAN: %w", err)
	}
	if skill.Uncertainty, err = getEnvAsFloat("SKILL_UNCERTAINTY", skill.Uncertainty); err != nil {
		return nil, fmt.Errorf("invalid SKILL_UNCERTAINTY: %w", err)
	}
	if skill.Beta, err = getEnvAsFloat("SKILL_BETA", skill.Beta); err != nil {
		return nil, fmt.Errorf("invalid SKILL_BETA: %w", err)
	}
	if skill.Tau, err = getEnvAsFloat("SKILL_TAU", skill.Tau); err != nil {
		return nil, fmt.Errorf("invalid SKILL_TAU: %w", err)
	}
	if skill.DrawProbability, err = getEnvAsFloat("SKILL_DRAW_PROBABILITY", skill.DrawProbability); err != nil {
		return nil, fmt.Errorf("invalid SKILL_DRAW_PROBABILITY: %w", err)
	}
	if skill.Uncertainty <= 0 || skill.Beta <= 0 {
		return nil, fmt.Errorf("skill uncertainty and beta must be positive")
	}
	if skill.DrawProbability < 0 || skill.DrawProbability >= 1 {
		return nil, fmt.Errorf("SKILL_DRAW_PROBABILITY must be in [0, 1)")
	}
	cfg.Rating.Skill = skill

	decay := rating.DefaultDecayConfig()
	if decay.GraceDays, err = getEnvAsInt("DECAY_GRACE_DAYS", decay.GraceDays); err != nil {
		return nil, fmt.Errorf("invalid DECAY_GRACE_DAYS: %w", err)
	}
	if decay.DailyFactor, err = getEnvAsFloat("DECAY_DAILY_FACTOR", decay.DailyFactor); err != nil {
		return nil, fmt.Errorf("invalid DECAY_DAILY_FACTOR: %w", err)
	}
	if decay.GraceDays < 2 {
		return nil, fmt.Errorf("DECAY_GRACE_DAYS must be at least 2")
	}
	if decay.DailyFactor <= 0 || decay.DailyFactor >= 1 {
		return nil, fmt.Errorf("DECAY_DAILY_FACTOR must be in (0, 1)")
	}
	cfg.Rating.Decay = decay

	cfg.Scheduler.DriftCheckSpec = getEnv("DRIFT_CHECK_CRON", "0 30 3 * * *")

	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDatabase opens the database described by cfg and sets the global DB.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DB.Driver {
	case "postgres":
		db, err = openPostgres(cfg, gormConfig)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DB.SQLitePath), gormConfig)
		if err == nil {
			// one writer at a time, transactions serialize on the connection
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, dbErr
			}
			sqlDB.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	log.Printf("Successfully connected to %s database", cfg.DB.Driver)
	return db, nil
}

func openPostgres(cfg *Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.DB.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.DB.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	return gorm.Open(postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}), gormConfig)
}

// Initialize loads the configuration and connects to the database once.
func Initialize() (*Config, error) {
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			initErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		if _, err := ConnectDatabase(cfg); err != nil {
			initErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return appConfig, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(valueStr)
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(valueStr, 64)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
