package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisHost string
	RedisPort string

	KafkaBrokerURL string
	KafkaTopic     string

	// Secret used to derive stable anonymous identities. Losing it unlinks
	// every pseudonym from its account.
	IdentitySecret string
	// Community scope all identities are derived within.
	CommunityScope string

	ModerationURL string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	NotificationPollInterval time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort: getEnv("BOARD_APP_PORT", ":8080"),

		DBHost: getEnv("BOARD_DB_HOST", "localhost"),
		DBPort: getEnv("BOARD_DB_PORT", "5432"),
		DBUser: getEnv("BOARD_DB_USER", "postgres"),
		DBPass: getEnv("BOARD_DB_PASS", "postgres"),
		DBName: getEnv("BOARD_DB_NAME", "board_db"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),

		KafkaBrokerURL: getEnv("KAFKA_BROKER_URL", "localhost:9092"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "board.events"),

		IdentitySecret: getEnv("IDENTITY_SECRET", "replace-this-with-a-strong-secret"),
		CommunityScope: getEnv("COMMUNITY_SCOPE", "campus"),

		ModerationURL: getEnv("MODERATION_URL", "http://localhost:8090"),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "board-images"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",

		NotificationPollInterval: getDuration("NOTIFICATION_POLL_INTERVAL", 30*time.Second),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
