package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/inbound"
	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/channel_utils"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

type mediaSynthesizer struct {
	logger         outbound.LoggerPort
	imageGenerator outbound.ImageGeneratorPort
	audioGenerator outbound.AudioGeneratorPort
	workerPool     outbound.TaskDispatcher
}

func NewMediaSynthesizer(logger outbound.LoggerPort, imageGenerator outbound.ImageGeneratorPort,
	audioGenerator outbound.AudioGeneratorPort, workerPool outbound.TaskDispatcher) inbound.MediaSynthesizerPort {
	return &mediaSynthesizer{
		logger:         logger,
		imageGenerator: imageGenerator,
		audioGenerator: audioGenerator,
		workerPool:     workerPool,
	}
}

// Synthesize visits every scene, not every prompt: a scene without an image
// prompt still gets its narration. Image and narration tasks have no
// cross-scene dependency and fan out on the worker pool; file paths are
// scene-addressed so concurrent tasks never contend on the same file.
func (s *mediaSynthesizer) Synthesize(ctx context.Context, params inbound.SynthesizeParams) []domain.SceneFailure {
	imageFailCh := make(chan domain.SceneFailure, len(params.Scenes))
	audioFailCh := make(chan domain.SceneFailure, len(params.Scenes))

	var imageWg, audioWg sync.WaitGroup

	for _, sc := range params.Scenes {
		scene := sc

		if prompt, ok := params.ImagePrompts[scene.Number]; ok {
			imageWg.Add(1)
			err := s.workerPool.Submit(func() {
				defer imageWg.Done()
				if err := s.synthesizeImage(ctx, scene, prompt, params.ProjectPath); err != nil {
					imageFailCh <- domain.SceneFailure{SceneNumber: scene.Number, Kind: domain.ImageMediaKind, Err: err}
				}
			})
			if err != nil {
				imageWg.Done()
				imageFailCh <- domain.SceneFailure{SceneNumber: scene.Number, Kind: domain.ImageMediaKind, Err: err}
			}
		} else {
			s.logger.WarnWithFields("no image prompt for scene, image skipped", map[string]interface{}{
				"scene": scene.Number,
			})
		}

		if strings.TrimSpace(scene.Description) == "" {
			continue
		}
		audioWg.Add(1)
		err := s.workerPool.Submit(func() {
			defer audioWg.Done()
			if err := s.synthesizeNarration(ctx, scene, params.ProjectPath, params.Voice); err != nil {
				audioFailCh <- domain.SceneFailure{SceneNumber: scene.Number, Kind: domain.AudioMediaKind, Err: err}
			}
		})
		if err != nil {
			audioWg.Done()
			audioFailCh <- domain.SceneFailure{SceneNumber: scene.Number, Kind: domain.AudioMediaKind, Err: err}
		}
	}

	s.closeAfter(&imageWg, imageFailCh)
	s.closeAfter(&audioWg, audioFailCh)

	mergedFailCh, err := channel_utils.MergeChannels[domain.SceneFailure](s.workerPool, imageFailCh, audioFailCh)
	if err != nil {
		s.logger.Error(err, "failed to merge media failure channels")
	}

	failures := make([]domain.SceneFailure, 0)
	for failure := range mergedFailCh {
		s.logger.ErrorWithFields(failure.Err, "scene media synthesis failed", map[string]interface{}{
			"scene": failure.SceneNumber,
			"kind":  failure.Kind,
		})
		failures = append(failures, failure)
	}

	return failures
}

// closeAfter closes the failure channel once every task feeding it has
// settled, so the merged collection loop can terminate.
func (s *mediaSynthesizer) closeAfter(wg *sync.WaitGroup, failCh chan domain.SceneFailure) {
	err := s.workerPool.Submit(func() {
		wg.Wait()
		close(failCh)
	})
	if err != nil {
		wg.Wait()
		close(failCh)
	}
}

func (s *mediaSynthesizer) synthesizeImage(ctx context.Context, scene domain.Scene, prompt string, projectPath string) error {
	s.logger.DebugWithFields("generating image", map[string]interface{}{
		"scene": scene.Number,
	})
	content, err := s.imageGenerator.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	imagePath := filepath.Join(projectPath, fmt.Sprintf("scene_%d.png", scene.Number))
	return os.WriteFile(imagePath, content, 0o644)
}

func (s *mediaSynthesizer) synthesizeNarration(ctx context.Context, scene domain.Scene, projectPath string, voice string) error {
	audioPath := filepath.Join(projectPath, fmt.Sprintf("scene_%d.mp3", scene.Number))

	// Reruns over a partially-completed project must not regenerate
	// narration that already exists.
	if _, err := os.Stat(audioPath); err == nil {
		s.logger.DebugWithFields("narration already exists, skipping", map[string]interface{}{
			"scene": scene.Number,
		})
		return nil
	}

	s.logger.DebugWithFields("narrating scene", map[string]interface{}{
		"scene": scene.Number,
	})
	content, err := s.audioGenerator.Generate(ctx, outbound.GenerateAudioRequest{
		Text:     scene.Description,
		Language: voice,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(audioPath, content, 0o644)
}
