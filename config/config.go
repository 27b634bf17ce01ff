package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisPass    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB int    `mapstructure:"REDIS_CACHE_DB"`
	RedisRatesDB int    `mapstructure:"REDIS_RATES_DB"`
	RedisQueueDB int    `mapstructure:"REDIS_QUEUE_DB"`

	// Payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Third-party data providers.
	OpenWeatherAPIKey  string `mapstructure:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `mapstructure:"OPENWEATHER_BASE_URL"`
	ExchangeAPIKey     string `mapstructure:"EXCHANGE_API_KEY"`
	ExchangeBaseURL    string `mapstructure:"EXCHANGE_BASE_URL"`
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`

	// Google Cloud (speech-to-text) and Firebase service accounts.
	GoogleServiceAccountFile   string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	FirebaseServiceAccountFile string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_FILE"`

	// Cloudinary storage.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_RATES_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "meditrip")
	viper.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("EXCHANGE_BASE_URL", "https://v6.exchangerate-api.com/v6")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
