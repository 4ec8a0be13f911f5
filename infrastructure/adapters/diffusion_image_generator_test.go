package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsantos2032/Storymaker-AI-App/config"
)

func TestDiffusionImageGenerator_DecodesFirstImage(t *testing.T) {
	imageBytes := []byte("not-really-a-png")
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Error("failed to decode request body:", err)
		}
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"images": {base64.StdEncoding.EncodeToString(imageBytes), "ignored-second-image"},
		})
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewDiffusionImageGenerator(NewContentFetcher(logger), &config.DiffusionConfig{
		ApiUrl:        server.URL,
		Steps:         1,
		GuidanceScale: 0.0,
	}, logger)

	decoded, err := generator.Generate(context.Background(), "ultra-detailed harbor at dusk")
	if err != nil {
		t.Fatal("Generate returned an error:", err)
	}
	if !bytes.Equal(decoded, imageBytes) {
		t.Fatalf("decoded image does not match: %q", decoded)
	}

	if gotBody["prompt"] != "ultra-detailed harbor at dusk" {
		t.Fatalf("unexpected prompt in request: %v", gotBody["prompt"])
	}
	if gotBody["num_inference_steps"] != float64(1) {
		t.Fatalf("unexpected step count in request: %v", gotBody["num_inference_steps"])
	}
}

func TestDiffusionImageGenerator_EmptyImageList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"images": {}})
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewDiffusionImageGenerator(NewContentFetcher(logger), &config.DiffusionConfig{
		ApiUrl: server.URL,
		Steps:  1,
	}, logger)

	if _, err := generator.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error for an empty image list")
	}
}

func TestDiffusionImageGenerator_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewDiffusionImageGenerator(NewContentFetcher(logger), &config.DiffusionConfig{
		ApiUrl: server.URL,
		Steps:  1,
	}, logger)

	if _, err := generator.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error for a non-OK backend response")
	}
}
