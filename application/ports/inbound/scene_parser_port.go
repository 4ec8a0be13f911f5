package inbound

import "github.com/rsantos2032/Storymaker-AI-App/domain"

// SceneParserPort turns free-form generative text into structured scene
// records. Both operations are best-effort: malformed blocks are dropped
// and an empty result is valid, never an error.
type SceneParserPort interface {
	ParseScenes(text string) []domain.Scene
	ParseImagePrompts(text string) map[int]string
}
