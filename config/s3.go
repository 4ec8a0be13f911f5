package config

import (
	"fmt"
	"os"
)

type S3Config struct {
	BucketName string
	Region     string
}

// GetS3Config reads the optional video-publishing bucket. A missing bucket
// name means publishing is disabled and is not an error.
func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("VIDEO_BUCKET_NAME")
	if bucketName == "" {
		return nil, nil
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, fmt.Errorf("AWS_REGION must be set when VIDEO_BUCKET_NAME is set")
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
