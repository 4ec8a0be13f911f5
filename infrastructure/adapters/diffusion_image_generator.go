package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/config"
)

type diffusionApiRequest struct {
	Prompt        string  `json:"prompt"`
	Steps         int     `json:"num_inference_steps"`
	GuidanceScale float64 `json:"guidance_scale"`
}

type diffusionApiResponse struct {
	Images []string `json:"images"`
}

type diffusionImageGenerator struct {
	ContentFetcher
	logger          outbound.LoggerPort
	diffusionConfig *config.DiffusionConfig
}

func NewDiffusionImageGenerator(contentFetcher ContentFetcher, diffusionConfig *config.DiffusionConfig,
	logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &diffusionImageGenerator{
		ContentFetcher:  contentFetcher,
		logger:          logger,
		diffusionConfig: diffusionConfig,
	}
}

func (d *diffusionImageGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	req, err := d.getRequest(ctx, prompt)
	if err != nil {
		return nil, err
	}

	rawRes, err := d.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var diffusionRes diffusionApiResponse
	if err := json.Unmarshal(rawRes, &diffusionRes); err != nil {
		d.logger.Error(err, "failed to unmarshal the diffusion response")
		return nil, err
	}

	if len(diffusionRes.Images) == 0 {
		return nil, fmt.Errorf("diffusion backend returned no images")
	}

	decodedImage, err := base64.StdEncoding.DecodeString(diffusionRes.Images[0])
	if err != nil {
		d.logger.Error(err, "failed to decode the generated image")
		return nil, err
	}

	return decodedImage, nil
}

func (d *diffusionImageGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := diffusionApiRequest{
		Prompt:        prompt,
		Steps:         d.diffusionConfig.Steps,
		GuidanceScale: d.diffusionConfig.GuidanceScale,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		d.logger.Error(err, "failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.diffusionConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		d.logger.Error(err, "failed to create the HTTP request")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
