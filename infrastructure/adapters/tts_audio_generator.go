package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/config"
)

type ttsApiRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type ttsAudioGenerator struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.TtsConfig
}

func NewTtsAudioGenerator(contentFetcher ContentFetcher, ttsConfig *config.TtsConfig,
	logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &ttsAudioGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

func (t *ttsAudioGenerator) Generate(ctx context.Context, generateAudioReq outbound.GenerateAudioRequest) ([]byte, error) {
	language := generateAudioReq.Language
	if language == "" {
		language = t.ttsConfig.Language
	}

	reqBody := ttsApiRequest{
		Text: generateAudioReq.Text,
		Lang: language,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		t.logger.Error(err, "failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.ttsConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		t.logger.Error(err, "failed to create the HTTP request")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	return t.FetchContent(req)
}
