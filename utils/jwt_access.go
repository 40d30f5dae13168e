package utils

import (
	"log"
	"os"
	"strconv"
)

// Signing configuration for access and refresh tokens, loaded once at
// startup. Expiration values are seconds.
var (
	JWTSecretKey               string
	JWTExpirationTime          int64
	RefreshTokenExpirationTime int64
)

// Defaults applied under GO_ENV=test so suites run without a .env.
var jwtTestDefaults = map[string]string{
	"JWT_SECRET_KEY":                "test_secret_key",
	"JWT_EXPIRATION_TIME":           "3600",
	"REFRESH_TOKEN_EXPIRATION_TIME": "604800",
}

func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		for key, value := range jwtTestDefaults {
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY not set")
	}

	JWTExpirationTime = mustEnvSeconds("JWT_EXPIRATION_TIME")
	RefreshTokenExpirationTime = mustEnvSeconds("REFRESH_TOKEN_EXPIRATION_TIME")
}

func mustEnvSeconds(key string) int64 {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s not set", key)
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("%s is not a number of seconds: %v", key, err)
	}

	return seconds
}
