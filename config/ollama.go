package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

type OllamaConfig struct {
	ApiUrl      string
	Model       string
	MaxAttempts int
	RetryDelay  time.Duration
}

func GetOllamaConfig() (*OllamaConfig, error) {
	apiUrl := os.Getenv("OLLAMA_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("OLLAMA_API_URL must be set")
	}
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		return nil, fmt.Errorf("OLLAMA_MODEL must be set")
	}

	maxAttempts := defaultMaxAttempts
	if raw := os.Getenv("OLLAMA_MAX_ATTEMPTS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("OLLAMA_MAX_ATTEMPTS must be a positive integer")
		}
		maxAttempts = parsed
	}

	retryDelay := defaultRetryDelay
	if raw := os.Getenv("OLLAMA_RETRY_DELAY"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse OLLAMA_RETRY_DELAY: %w", err)
		}
		retryDelay = parsed
	}

	return &OllamaConfig{
		ApiUrl:      apiUrl,
		Model:       model,
		MaxAttempts: maxAttempts,
		RetryDelay:  retryDelay,
	}, nil
}
