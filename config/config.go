package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values needed by the application, read
// once at process start and passed by injection into each component. The
// mapstructure tags tell Viper how to map environment variables to fields.
type Config struct {
	DBSource            string        `mapstructure:"DB_SOURCE"`             // Database connection string
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`        // Address where the server will run (e.g., "localhost:8080")
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`   // Secret key for signing tokens
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"` // Duration tokens will remain valid (e.g., "15m", "1h")
	GeminiAPIURL        string        `mapstructure:"GEMINI_API_URL"`        // Gemini endpoint; empty means the public one
	GeminiAPIKey        string        `mapstructure:"GEMINI_API_KEY"`        // API key for the model provider
	GeminiModel         string        `mapstructure:"GEMINI_MODEL"`          // Model name, e.g. "gemini-2.0-flash"
	FrontendURL         string        `mapstructure:"FRONTEND_URL"`          // Allowed CORS origin
}

// LoadConfig loads environment variables from a file and environment into
// the Config struct.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
