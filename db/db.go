package db

import (
	"fmt"
	"os"
	"os/user"

	"github.com/caregivers-platform/backend/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func GetDB() *gorm.DB {
	return DB
}

// Init establishes the DB connection without running migrations.
func Init() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn("no .env file found, using environment variables directly")
	}

	dsn := DSNFromEnv()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalw("failed to connect to database", "error", err)
	}

	DB = db
	logger.Log.Info("database connection established")
}

// DSNFromEnv resolves the connection string. DATABASE_URL wins when set;
// otherwise DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME are read with
// defaults of localhost, 5432, the current OS user, empty, caregivers_db.
func DSNFromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	name := envOr("DB_NAME", "caregivers_db")
	usr := os.Getenv("DB_USER")
	if usr == "" {
		if current, err := user.Current(); err == nil {
			usr = current.Username
		}
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", usr, password, host, port, name)
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s", usr, host, port, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
