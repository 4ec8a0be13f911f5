package outbound

import "context"

type GenerateAudioRequest struct {
	Text     string
	Language string
}

type AudioGeneratorPort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) ([]byte, error)
}
