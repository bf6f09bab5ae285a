package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries all runtime settings. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	AppEnv   string `envconfig:"APP_ENV" default:"production"`
	LogFile  string `envconfig:"LOG_FILE" default:"fastdelivery.log"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"fastdelivery"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// LoadConfig reads the configuration from the environment. A missing .env
// file is not an error; explicit environment variables always win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	return config, nil
}

// PostgresDSN assembles the connection string for the gorm postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Development reports whether the app runs with relaxed error reporting.
func (c Config) Development() bool {
	return c.AppEnv == "development"
}
