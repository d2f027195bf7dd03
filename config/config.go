package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says we are past
// development.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	GO_ENV string
	// Backend API
	API_BASE_URL         string
	HTTP_TIMEOUT_SECONDS int
	DEFAULT_PAGE_SIZE    int
	// Optional Redis cache tier; empty disables it
	REDIS_URL string
	// Optional cron spec for background cache refresh; empty disables it
	CACHE_REFRESH_SCHEDULE string
	// Dev mock backend
	MOCK_API_PORT int
}

func Get() (*EnviornmentVariable, error) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api"
	}

	timeout, err := strconv.Atoi(os.Getenv("HTTP_TIMEOUT_SECONDS"))
	if err != nil || timeout <= 0 {
		timeout = 30
	}

	pageSize, err := strconv.Atoi(os.Getenv("DEFAULT_PAGE_SIZE"))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	mockPort, err := strconv.Atoi(os.Getenv("MOCK_API_PORT"))
	if err != nil || mockPort <= 0 {
		mockPort = 8080
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:                 os.Getenv("GO_ENV"),
		API_BASE_URL:           baseURL,
		HTTP_TIMEOUT_SECONDS:   timeout,
		DEFAULT_PAGE_SIZE:      pageSize,
		REDIS_URL:              os.Getenv("REDIS_URL"),
		CACHE_REFRESH_SCHEDULE: os.Getenv("CACHE_REFRESH_SCHEDULE"),
		MOCK_API_PORT:          mockPort,
	}

	return envVariables, nil
}
