package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/inbound"
	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
)

// videoAssembler is read-only over the project directory: it discovers
// whatever the media synthesizer managed to write and assembles the scenes
// that have both required assets.
type videoAssembler struct {
	logger           outbound.LoggerPort
	clipCreator      outbound.ClipCreatorPort
	clipConcatenator outbound.ConcatenateClipsPort
	sceneImageRegexp *regexp.Regexp
}

func NewVideoAssembler(logger outbound.LoggerPort, clipCreator outbound.ClipCreatorPort,
	clipConcatenator outbound.ConcatenateClipsPort) inbound.VideoAssemblerPort {
	return &videoAssembler{
		logger:           logger,
		clipCreator:      clipCreator,
		clipConcatenator: clipConcatenator,
		sceneImageRegexp: regexp.MustCompile(`^scene_(\d+)\.png$`),
	}
}

func (v *videoAssembler) Assemble(ctx context.Context, projectPath string, outputPath string) (string, error) {
	sceneNumbers, err := v.discoverSceneNumbers(projectPath)
	if err != nil {
		return "", err
	}

	clipPaths := make([]string, 0, len(sceneNumbers))
	for _, sceneNumber := range sceneNumbers {
		imagePath := filepath.Join(projectPath, fmt.Sprintf("scene_%d.png", sceneNumber))
		audioPath := filepath.Join(projectPath, fmt.Sprintf("scene_%d.mp3", sceneNumber))
		if _, err := os.Stat(audioPath); err != nil {
			v.logger.WarnWithFields("missing narration for scene, excluded from video", map[string]interface{}{
				"scene": sceneNumber,
			})
			continue
		}

		clipPath, err := v.clipCreator.Create(ctx, imagePath, audioPath)
		if err != nil {
			v.logger.ErrorWithFields(err, "failed to build clip for scene, excluded from video", map[string]interface{}{
				"scene": sceneNumber,
			})
			continue
		}
		clipPaths = append(clipPaths, clipPath)
	}

	if len(clipPaths) == 0 {
		v.logger.Warn("no scene has both image and narration, nothing to assemble")
		return "", nil
	}

	if err := v.clipConcatenator.Concatenate(ctx, clipPaths, outputPath); err != nil {
		return "", err
	}

	return outputPath, nil
}

// discoverSceneNumbers lists scene_{N}.png files and returns their numbers
// sorted ascending numerically, so scene_10 sorts after scene_9.
func (v *videoAssembler) discoverSceneNumbers(projectPath string) ([]int, error) {
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return nil, err
	}

	sceneNumbers := make([]int, 0, len(entries))
	for _, entry := range entries {
		match := v.sceneImageRegexp.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		sceneNumber, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		sceneNumbers = append(sceneNumbers, sceneNumber)
	}
	sort.Ints(sceneNumbers)

	return sceneNumbers, nil
}
