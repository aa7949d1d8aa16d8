package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the MySQL connection described by the environment. Referential
// cascades are handled in application code, so constraint migration is off.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "food_store"),
	)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

// BaseURL is the public origin encoded into QR redirect targets and
// uploaded-file URLs.
func BaseURL() string {
	return getEnv("APP_BASE_URL", "http://localhost:8080")
}

// UploadDir is the local blob-store root, served under /uploads.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "public/uploads")
}

// RedisAddr enables the redis-backed session store when set.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTP returns the mailer configuration; Host empty means "not configured"
// and callers should fall back to the log sender.
func SMTP() SMTPConfig {
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     getEnv("SMTP_PORT", "587"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "RestoAdmin <no-reply@localhost>"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
