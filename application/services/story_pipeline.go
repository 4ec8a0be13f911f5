package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/inbound"
	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

const (
	storyIDLength = 8
	DefaultVoice  = "en"
)

// storyPipeline sequences one story run end to end: four text-generation
// stages, two parses, persistence, then best-effort media synthesis and
// video assembly. Text and persistence failures abort the run; everything
// after the record is saved only degrades the result.
type storyPipeline struct {
	logger           outbound.LoggerPort
	textGenerator    outbound.TextGeneratorPort
	sceneParser      inbound.SceneParserPort
	mediaSynthesizer inbound.MediaSynthesizerPort
	videoAssembler   inbound.VideoAssemblerPort
	storyStore       outbound.StoryStorePort
	videoPublisher   outbound.VideoPublisherPort
	outputDir        string
	unsafePathChars  *regexp.Regexp
}

// NewStoryPipeline wires the orchestrator. videoPublisher may be nil, in
// which case the assembled video stays local only.
func NewStoryPipeline(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort,
	sceneParser inbound.SceneParserPort, mediaSynthesizer inbound.MediaSynthesizerPort,
	videoAssembler inbound.VideoAssemblerPort, storyStore outbound.StoryStorePort,
	videoPublisher outbound.VideoPublisherPort, outputDir string) inbound.StoryPipelinePort {
	return &storyPipeline{
		logger:           logger,
		textGenerator:    textGenerator,
		sceneParser:      sceneParser,
		mediaSynthesizer: mediaSynthesizer,
		videoAssembler:   videoAssembler,
		storyStore:       storyStore,
		videoPublisher:   videoPublisher,
		outputDir:        outputDir,
		unsafePathChars:  regexp.MustCompile(`[\\/*?:"<>|]`),
	}
}

func (s *storyPipeline) Run(ctx context.Context, params inbound.StoryPipelineParams) (*inbound.StoryPipelineResult, error) {
	params.Genre = strings.ToLower(strings.TrimSpace(params.Genre))
	if params.Voice == "" {
		params.Voice = DefaultVoice
	}

	s.logger.InfoWithFields("generating story idea", map[string]interface{}{
		"genre": params.Genre,
	})
	idea, err := s.textGenerator.Generate(ctx, storyIdeaPrompt(params.Genre))
	if err != nil {
		return nil, err
	}

	s.logger.Info("validating story idea")
	validation, err := s.textGenerator.Generate(ctx, validateStoryPrompt(params.Genre, idea))
	if err != nil {
		return nil, err
	}

	s.logger.Info("generating title")
	title, err := s.textGenerator.Generate(ctx, titlePrompt(params.Genre, idea))
	if err != nil {
		return nil, err
	}

	s.logger.Info("generating scenes")
	rawSceneText, err := s.textGenerator.Generate(ctx, scenesPrompt(params.Genre, params.SceneCount, idea))
	if err != nil {
		return nil, err
	}
	scenes := s.sceneParser.ParseScenes(rawSceneText)
	if len(scenes) == 0 {
		s.logger.Warn("no well-formed scenes recovered from generated text")
	}

	s.logger.Info("generating image prompts")
	rawImagePromptText, err := s.textGenerator.Generate(ctx, imagePromptsPrompt(params.Genre, scenes))
	if err != nil {
		return nil, err
	}
	imagePrompts := s.sceneParser.ParseImagePrompts(rawImagePromptText)

	// The story id is folded into the directory name so runs with identical
	// titles never share a project namespace.
	storyID := uuid.NewString()[:storyIDLength]
	safeTitle := s.sanitizeTitle(title)
	projectPath := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s", safeTitle, storyID))
	if err := os.MkdirAll(projectPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create project directory %s: %w", projectPath, err)
	}

	// Persist before media synthesis so the textual content survives a
	// partial or failed media stage.
	record := domain.NewStoryRecord(storyID, title, params.Genre, idea, rawSceneText,
		scenes, imagePrompts, rawImagePromptText, projectPath)
	if err := s.storyStore.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("generating images and narration", map[string]interface{}{
		"story_id": storyID,
		"scenes":   len(scenes),
	})
	mediaFailures := s.mediaSynthesizer.Synthesize(ctx, inbound.SynthesizeParams{
		ImagePrompts: imagePrompts,
		Scenes:       scenes,
		ProjectPath:  projectPath,
		Voice:        params.Voice,
	})

	s.logger.InfoWithFields("assembling video", map[string]interface{}{
		"story_id": storyID,
	})
	videoPath, err := s.videoAssembler.Assemble(ctx, projectPath, filepath.Join(projectPath, safeTitle+".mp4"))
	if err != nil {
		s.logger.ErrorWithFields(err, "video assembly failed, story text is still persisted", map[string]interface{}{
			"story_id": storyID,
		})
		videoPath = ""
	}

	videoKey := s.publishVideo(ctx, storyID, videoPath)

	return &inbound.StoryPipelineResult{
		StoryID:       storyID,
		Title:         title,
		Genre:         params.Genre,
		StoryIdea:     idea,
		Validation:    validation,
		Scenes:        scenes,
		ImagePrompts:  imagePrompts,
		ProjectPath:   projectPath,
		VideoPath:     videoPath,
		VideoKey:      videoKey,
		MediaFailures: mediaFailures,
	}, nil
}

// publishVideo uploads the assembled video when a publisher is configured.
// Publishing is best-effort: the local video path stands either way.
func (s *storyPipeline) publishVideo(ctx context.Context, storyID string, videoPath string) string {
	if s.videoPublisher == nil || videoPath == "" {
		return ""
	}

	res, err := s.videoPublisher.Publish(ctx, outbound.PublishVideoRequest{
		StoryID:       storyID,
		VideoFileName: videoPath,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to publish video", map[string]interface{}{
			"story_id": storyID,
		})
		return ""
	}

	return res.VideoKey
}

// sanitizeTitle maps characters that are unsafe in file names to
// underscores.
func (s *storyPipeline) sanitizeTitle(title string) string {
	return s.unsafePathChars.ReplaceAllString(title, "_")
}
