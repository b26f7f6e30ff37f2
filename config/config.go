package config

import (
	"os"
	"strconv"
)

// Config holds every environment-backed setting, read once at startup.
type Config struct {
	Port             string
	MongoURI         string
	DBName           string
	JWTSecret        string
	BcryptSaltRounds int
	FrontendURL      string
	CloudinaryURL    string

	SSL SSLConfig
}

// SSLConfig carries the SSLCommerz gateway credentials and callback URLs.
type SSLConfig struct {
	StoreID       string
	StorePassword string
	IsLive        bool
	SuccessURL    string
	FailURL       string
	CancelURL     string
	IPNURL        string
}

func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "gadgets-hub"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		BcryptSaltRounds: getEnvInt("BCRYPT_SALT_ROUNDS", 10),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		SSL: SSLConfig{
			StoreID:       os.Getenv("SSL_STORE_ID"),
			StorePassword: os.Getenv("SSL_STORE_PASSWORD"),
			IsLive:        os.Getenv("SSL_IS_LIVE") == "true",
			SuccessURL:    getEnv("SSL_SUCCESS_URL", "http://localhost:3000/cart/payment"),
			FailURL:       getEnv("SSL_FAIL_URL", "http://localhost:3000/cart/payment"),
			CancelURL:     getEnv("SSL_CANCEL_URL", "http://localhost:3000/cart/payment"),
			IPNURL:        os.Getenv("SSL_IPN_URL"),
		},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
