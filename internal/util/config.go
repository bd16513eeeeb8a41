package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Db            DbConfig
	JwtSecret     string
	KafkaBrokers  []string
	StartingCash  decimal.Decimal
	MigrationsDir string
}

type DbConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	Database  string
	EnableSsl bool
}

func (t DbConfig) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func (t DbConfig) ToMigrationUrl() string {
	sslMode := "disable"
	if t.EnableSsl {
		sslMode = "require"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		t.User, t.Password, t.Host, t.Port, t.Database, sslMode)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	startingCash, err := decimal.NewFromString(envOrDefault("STARTING_CASH", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_CASH: %w", err)
	}
	if startingCash.IsNegative() {
		return nil, fmt.Errorf("STARTING_CASH must be >= 0")
	}

	var kafkaBrokers []string
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}

	return &Config{
		Db: DbConfig{
			Host:      envOrDefault("DB_HOST", "localhost"),
			Port:      envOrDefault("DB_PORT", "5432"),
			User:      envOrDefault("DB_USER", "postgres"),
			Password:  os.Getenv("DB_PASSWORD"),
			Database:  envOrDefault("DB_NAME", "papertrade"),
			EnableSsl: strings.EqualFold(os.Getenv("DB_SSL"), "true"),
		},
		JwtSecret:     jwtSecret,
		KafkaBrokers:  kafkaBrokers,
		StartingCash:  startingCash,
		MigrationsDir: envOrDefault("MIGRATIONS_DIR", "migrations"),
	}, nil
}
