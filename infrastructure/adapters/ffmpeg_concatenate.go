package adapters

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
)

type ffmpegConcatenate struct {
	logger outbound.LoggerPort
}

func NewFFmpegConcatenate(logger outbound.LoggerPort) outbound.ConcatenateClipsPort {
	return &ffmpegConcatenate{
		logger: logger,
	}
}

// Concatenate joins the clips in the given order with the concat demuxer
// and removes the consumed clip files afterwards.
func (f *ffmpegConcatenate) Concatenate(ctx context.Context, clipPaths []string, outputPath string) error {
	listFile, err := os.Create(filepath.Join(os.TempDir(), uuid.NewString()))
	if err != nil {
		f.logger.Error(err, "failed to create clip list file")
		return err
	}

	defer func(listFile *os.File) {
		if err := listFile.Close(); err != nil {
			f.logger.Error(err, "failed to close clip list file")
		}
		if err := os.Remove(listFile.Name()); err != nil {
			f.logger.Error(err, "failed to remove clip list file")
		}
	}(listFile)

	writer := bufio.NewWriter(listFile)
	for _, clipPath := range clipPaths {
		if _, err := writer.WriteString("file '" + clipPath + "'\n"); err != nil {
			f.logger.Error(err, "failed to write to clip list file")
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		f.logger.Error(err, "failed to flush clip list file")
		return err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", "concat",
		"-safe", "0",
		"-i", listFile.Name(),
		"-c", "copy",
		outputPath)
	if err := cmd.Run(); err != nil {
		f.logger.Error(err, "failed to concatenate clips")
		return err
	}

	for _, clipPath := range clipPaths {
		if err := os.Remove(clipPath); err != nil {
			f.logger.Error(err, "failed to remove clip file")
		}
	}

	return nil
}
