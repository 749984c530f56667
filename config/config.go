package config

import (
	"os"

	"campus-dining-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "campus_dining_super_secret_2024"))

// Load reads the optional .env file into the environment and
// refreshes values that were captured at package init.
func Load() {
	if err := godotenv.Load(); err == nil {
		JWTSecret = []byte(getEnv("JWT_SECRET", "campus_dining_super_secret_2024"))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	path := getEnv("DATABASE_PATH", "campus_dining.db")
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surface unique-index violations as gorm.ErrDuplicatedKey so
		// handlers can translate them to conflict responses.
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Campus{},
		&models.Hall{},
		&models.MenuItem{},
		&models.ContactInfo{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Str("path", path).Msg("Database connected and migrated")
}
