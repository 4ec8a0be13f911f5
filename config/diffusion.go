package config

import (
	"fmt"
	"os"
	"strconv"
)

type DiffusionConfig struct {
	ApiUrl        string
	Steps         int
	GuidanceScale float64
}

func GetDiffusionConfig() (*DiffusionConfig, error) {
	apiUrl := os.Getenv("DIFFUSION_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("DIFFUSION_API_URL must be set")
	}

	// SDXL-turbo defaults: a single inference step with guidance disabled.
	steps := 1
	if raw := os.Getenv("DIFFUSION_STEPS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("DIFFUSION_STEPS must be a positive integer")
		}
		steps = parsed
	}

	guidanceScale := 0.0
	if raw := os.Getenv("DIFFUSION_GUIDANCE_SCALE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DIFFUSION_GUIDANCE_SCALE: %w", err)
		}
		guidanceScale = parsed
	}

	return &DiffusionConfig{
		ApiUrl:        apiUrl,
		Steps:         steps,
		GuidanceScale: guidanceScale,
	}, nil
}
