package inbound

import (
	"context"

	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

type SynthesizeParams struct {
	ImagePrompts map[int]string
	Scenes       []domain.Scene
	ProjectPath  string
	Voice        string
}

// MediaSynthesizerPort writes per-scene image and narration artifacts under
// the project path. Per-scene failures are recorded and returned, never
// fatal to the batch; all scenes are settled before the call returns.
type MediaSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) []domain.SceneFailure
}
