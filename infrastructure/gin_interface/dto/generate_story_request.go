package dto

type GenerateStoryRequest struct {
	Genre     string `json:"genre"`
	NumScenes int    `json:"num_scenes"`
	Voice     string `json:"voice"`
}

type SceneResponse struct {
	Scene       int    `json:"scene"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

type StoryMetadataResponse struct {
	StoryID      string            `json:"story_id"`
	Title        string            `json:"title"`
	Genre        string            `json:"genre"`
	StoryIdea    string            `json:"story_idea"`
	Validation   string            `json:"validation,omitempty"`
	Scenes       []SceneResponse   `json:"scenes"`
	ImagePrompts map[string]string `json:"image_prompts"`
	Folder       string            `json:"folder"`
	VideoFile    string            `json:"video_file,omitempty"`
	VideoKey     string            `json:"video_key,omitempty"`
}

type GenerateStoryResponse struct {
	Metadata StoryMetadataResponse `json:"metadata"`
	Message  string                `json:"message"`
}
