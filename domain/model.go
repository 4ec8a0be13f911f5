package domain

import (
	"strconv"
	"time"
)

type MediaKind string

const (
	ImageMediaKind MediaKind = "image"
	AudioMediaKind MediaKind = "audio"
)

// Scene is a numbered narrative unit, the atomic unit of media synthesis
// and video assembly. Numbers are unique within a story but not required
// to be contiguous.
type Scene struct {
	Number      int    `json:"scene" dynamodbav:"scene"`
	Summary     string `json:"summary" dynamodbav:"summary"`
	Description string `json:"description" dynamodbav:"description"`
}

// StoryRecord is the persisted result of one pipeline run. It is created
// once after parsing completes and never mutated afterwards.
type StoryRecord struct {
	StoryID            string            `json:"story_id" dynamodbav:"story_id"`
	Title              string            `json:"title" dynamodbav:"title"`
	Genre              string            `json:"genre" dynamodbav:"genre"`
	StoryIdea          string            `json:"story_idea" dynamodbav:"story_idea"`
	RawSceneText       string            `json:"raw_scene_text" dynamodbav:"raw_scene_text"`
	Scenes             []Scene           `json:"scenes" dynamodbav:"scenes"`
	ImagePrompts       map[string]string `json:"image_prompts" dynamodbav:"image_prompts"`
	RawImagePromptText string            `json:"raw_image_prompt_text" dynamodbav:"raw_image_prompt_text"`
	ProjectPath        string            `json:"project_path" dynamodbav:"project_path"`
	CreatedAt          time.Time         `json:"created_at" dynamodbav:"created_at,unixtime"`
}

func NewStoryRecord(storyID string, title string, genre string, idea string, rawSceneText string,
	scenes []Scene, imagePrompts map[int]string, rawImagePromptText string, projectPath string) StoryRecord {
	return StoryRecord{
		StoryID:            storyID,
		Title:              title,
		Genre:              genre,
		StoryIdea:          idea,
		RawSceneText:       rawSceneText,
		Scenes:             scenes,
		ImagePrompts:       stringKeyed(imagePrompts),
		RawImagePromptText: rawImagePromptText,
		ProjectPath:        projectPath,
		CreatedAt:          time.Now().UTC(),
	}
}

// The prompt map is string-keyed on the wire and in the store.
func stringKeyed(prompts map[int]string) map[string]string {
	out := make(map[string]string, len(prompts))
	for num, prompt := range prompts {
		out[strconv.Itoa(num)] = prompt
	}
	return out
}

// SceneFailure records a non-fatal per-scene media synthesis failure.
// It never aborts the batch it occurred in.
type SceneFailure struct {
	SceneNumber int
	Kind        MediaKind
	Err         error
}
