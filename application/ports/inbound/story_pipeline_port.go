package inbound

import (
	"context"

	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

// StoryPipelineParams is the immutable per-run configuration. Concurrent
// runs never share parameter state.
type StoryPipelineParams struct {
	Genre      string
	SceneCount int
	Voice      string
}

type StoryPipelineResult struct {
	StoryID       string
	Title         string
	Genre         string
	StoryIdea     string
	Validation    string
	Scenes        []domain.Scene
	ImagePrompts  map[int]string
	ProjectPath   string
	VideoPath     string
	VideoKey      string
	MediaFailures []domain.SceneFailure
}

type StoryPipelinePort interface {
	Run(ctx context.Context, params StoryPipelineParams) (*StoryPipelineResult, error)
}
