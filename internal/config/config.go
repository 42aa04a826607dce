package config

import (
	"fmt"
	"os"
)

// Config is read once at startup from the environment; main loads an
// optional .env file beforehand.
type Config struct {
	HTTPAddr string

	MailAPIURL  string
	MailToken   string
	AIAPIURL    string
	AIProductID string
	AIToken     string

	ExtractorModel string
	ReviewerModel  string
}

func Load() Config {
	return Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		MailAPIURL:     getEnv("MAIL_API_URL", "https://mail.infomaniak.com"),
		MailToken:      os.Getenv("MAIL_ACCESS_TOKEN"),
		AIAPIURL:       getEnv("IK_API_URL", "https://api.infomaniak.com"),
		AIProductID:    os.Getenv("IK_PRODUCT_ID"),
		AIToken:        os.Getenv("IK_ACCESS_TOKEN"),
		ExtractorModel: getEnv("EXTRACTOR_MODEL", "qwen3"),
		ReviewerModel:  getEnv("REVIEWER_MODEL", "mistral3"),
	}
}

// AIBaseURL is the OpenAI-compatible endpoint of the AI product.
func (c Config) AIBaseURL() string {
	return fmt.Sprintf("%s/2/ai/%s/openai/v1", c.AIAPIURL, c.AIProductID)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
