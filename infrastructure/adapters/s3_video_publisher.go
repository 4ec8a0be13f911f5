package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/config"
)

type s3VideoPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3VideoPublisher(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.VideoPublisherPort {
	return &s3VideoPublisher{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

// Publish uploads the assembled video. The local file stays in place; the
// project directory remains the source of truth.
func (s *s3VideoPublisher) Publish(ctx context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	file, err := os.Open(req.VideoFileName)
	if err != nil {
		s.logger.Error(err, "failed to open video file")
		return nil, err
	}

	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "failed to close video file")
		}
	}(file)

	itemPath := fmt.Sprintf("story/%s/%s", req.StoryID, filepath.Base(req.VideoFileName))

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(itemPath),
		Body:   file,
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "failed to upload video to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    itemPath,
		})
		return nil, err
	}

	return &outbound.PublishVideoResponse{
		VideoKey:    itemPath,
		StoreRegion: s.s3Config.Region,
	}, nil
}
