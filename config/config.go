package config

import (
	"fmt"
	"os"

	"github.com/anuragksng/Food-Recommendation-System/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config is read once at startup from the environment (.env supported).
type Config struct {
	DataDir    string
	DBDriver   string // "postgres", "sqlite" or "none"
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	SQLitePath string
	Port       string
	LogMode    string
}

// Load reads the .env file if present and builds the Config. A missing .env
// is not an error; plain environment variables still apply.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataDir:    getenv("DATA_DIR", "data"),
		DBDriver:   getenv("DB_DRIVER", "none"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "foodrec"),
		DBPort:     getenv("DB_PORT", "5432"),
		SQLitePath: getenv("SQLITE_PATH", "foodrec.db"),
		Port:       getenv("PORT", "8080"),
		LogMode:    getenv("LOG_MODE", "dev"),
	}
}

// InitDB opens the configured relational mirror and migrates the schema.
// With DB_DRIVER=none it returns (nil, nil) and the service runs purely from
// the in-memory dataset.
func InitDB(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Weather{},
		&models.UserPreference{},
		&models.Rating{},
		&models.SearchHistory{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
