package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/config"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// ollamaTextGenerator is the generation client: stateless per call, retried
// with a constant inter-attempt delay up to the configured attempt ceiling.
// The only error it surfaces is domain.ErrGenerationUnavailable.
type ollamaTextGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	ollamaConfig *config.OllamaConfig
}

func NewOllamaTextGenerator(contentFetcher ContentFetcher, ollamaConfig *config.OllamaConfig,
	logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &ollamaTextGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ollamaConfig:   ollamaConfig,
	}
}

func (o *ollamaTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var text string
	attempt := 0

	operation := func() error {
		attempt++

		req, err := o.getRequest(ctx, prompt)
		if err != nil {
			return err
		}

		payload, err := o.FetchContent(req)
		if err != nil {
			o.logger.WarnWithFields("text generation attempt failed", map[string]interface{}{
				"attempt": attempt,
			})
			return err
		}

		var res ollamaResponse
		if err := json.Unmarshal(payload, &res); err != nil {
			o.logger.Error(err, "failed to unmarshal text generation response")
			return err
		}

		text = strings.TrimSpace(res.Response)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(o.ollamaConfig.RetryDelay), uint64(o.ollamaConfig.MaxAttempts-1)),
		ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		// A cancelled caller is not a backend outage.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		o.logger.ErrorWithFields(err, "text generation attempts exhausted", map[string]interface{}{
			"attempts": attempt,
		})
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}

	return text, nil
}

func (o *ollamaTextGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := ollamaRequest{
		Model:  o.ollamaConfig.Model,
		Prompt: prompt,
		Stream: false,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		o.logger.Error(err, "failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.ollamaConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		o.logger.Error(err, "failed to create the HTTP request")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
