package config

import (
	"fmt"
	"os"
)

type TtsConfig struct {
	ApiUrl   string
	Language string
}

func GetTtsConfig() (*TtsConfig, error) {
	apiUrl := os.Getenv("TTS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TTS_API_URL must be set")
	}

	language := os.Getenv("TTS_LANGUAGE")
	if language == "" {
		language = "en"
	}

	return &TtsConfig{
		ApiUrl:   apiUrl,
		Language: language,
	}, nil
}
