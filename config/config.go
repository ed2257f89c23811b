package config

import (
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campus-food-api/models"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	DBPath   string `envconfig:"DB_PATH" default:"campus_food.db"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// JWTSecret signs identity tokens
	JWTSecret string        `envconfig:"JWT_SECRET" default:"campus_food_super_secret_2024"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	// VerifyTotal makes order placement recompute the cart total and reject mismatches
	VerifyTotal bool `envconfig:"VERIFY_TOTAL" default:"false"`

	AdminName     string `envconfig:"ADMIN_NAME" default:"Canteen Admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@campus.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin1234"`
}

// Load reads an optional .env file and then the process environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}
	return cfg, nil
}

// OpenDB connects to the sqlite file at path and migrates every model
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}

	// sqlite allows one writer; a single connection also keeps :memory: databases shared
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate auto-migrates all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Order{},
		&models.LineItem{},
		&models.Feedback{},
		&models.OrderStatusHistory{},
		&models.WeatherStatus{},
	)
	return errors.Wrap(err, "migrate database")
}
