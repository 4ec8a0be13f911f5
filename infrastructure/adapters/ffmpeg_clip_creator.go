package adapters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
)

// ffmpegClipCreator renders a still image held for the length of its
// narration into a temp clip. Inputs are left untouched; the assembler is
// read-only over the project directory.
type ffmpegClipCreator struct {
	logger    outbound.LoggerPort
	frameRate int
}

func NewFFmpegClipCreator(logger outbound.LoggerPort, frameRate int) outbound.ClipCreatorPort {
	return &ffmpegClipCreator{
		logger:    logger,
		frameRate: frameRate,
	}
}

func (f *ffmpegClipCreator) Create(ctx context.Context, imagePath string, audioPath string) (string, error) {
	outputFile := filepath.Join(os.TempDir(), uuid.NewString()+".mp4")

	// -shortest ends the clip exactly when the narration track does.
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-c:a", "aac",
		"-b:a", "192k",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(f.frameRate),
		"-shortest",
		outputFile)
	if err := cmd.Run(); err != nil {
		f.logger.ErrorWithFields(err, "failed to create clip", map[string]interface{}{
			"image": imagePath,
			"audio": audioPath,
		})
		return "", err
	}

	return outputFile, nil
}
