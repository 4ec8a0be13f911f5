package config

import (
	"fmt"
	"os"
	"strconv"
)

type PipelineConfig struct {
	OutputDir      string
	FrameRate      int
	WorkerPoolSize int
}

func GetPipelineConfig() (*PipelineConfig, error) {
	outputDir := os.Getenv("STORY_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "story_outputs"
	}

	frameRate := 24
	if raw := os.Getenv("VIDEO_FRAME_RATE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("VIDEO_FRAME_RATE must be a positive integer")
		}
		frameRate = parsed
	}

	workerPoolSize := 32
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer")
		}
		workerPoolSize = parsed
	}

	return &PipelineConfig{
		OutputDir:      outputDir,
		FrameRate:      frameRate,
		WorkerPoolSize: workerPoolSize,
	}, nil
}
