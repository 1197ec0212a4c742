package config

import (
	"encoding/hex"
	"log/slog"
	"os"
	"time"
)

const (
	devJWTSecret = "dev-secret-change-in-production"
	// 32 zero-ish bytes, hex encoded. Dev only.
	devVaultKey = "0000000000000000000000000000000000000000000000000000000000000000"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	VaultKey    []byte
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passforge?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:   24 * time.Hour,
	}

	rawKey := getEnv("VAULT_KEY", devVaultKey)
	key, err := hex.DecodeString(rawKey)
	if err != nil || len(key) != 32 {
		slog.Error("VAULT_KEY must be 32 bytes, hex encoded")
		os.Exit(1)
	}
	cfg.VaultKey = key

	if cfg.Env == "production" {
		if cfg.JWTSecret == devJWTSecret {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}
		if rawKey == devVaultKey {
			slog.Error("VAULT_KEY must be set in production environment")
			os.Exit(1)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
