package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type env struct {
	ServerAddr               string
	PostgresConnStr          string
	AccessTokenSecret        string
	RefreshTokenSecret       string
	AccessTokenExpiryInSecs  int
	RefreshTokenExpiryInSecs int
}

// Env holds all environment backed configuration. It is populated once at
// package init so a missing required variable fails the process before the
// server starts.
var Env = loadEnv()

func loadEnv() *env {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	return &env{
		ServerAddr:      getEnv("SERVER_ADDR", "8080"),
		PostgresConnStr: mustGetEnv("POSTGRES_CONN_STR"),

		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),

		AccessTokenExpiryInSecs: getEnvAsInt(
			"ACCESS_TOKEN_EXPIRY_IN_SECS",
			(15 * 60),
		),
		RefreshTokenExpiryInSecs: getEnvAsInt(
			"REFRESH_TOKEN_EXPIRY_IN_SECS",
			(7 * 24 * 60 * 60),
		),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func mustGetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		log.Fatalf("required environment variable '%s' is not set", key)
	}

	return value
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	num, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf(
			"environment variable '%s' must be an integer, got '%s'",
			key,
			value,
		)
	}

	return num
}
