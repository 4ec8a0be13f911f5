package outbound

import "context"

// ConcatenateClipsPort joins clips in the given order into a single video
// at outputPath. Clip files are consumed by the call.
type ConcatenateClipsPort interface {
	Concatenate(ctx context.Context, clipPaths []string, outputPath string) error
}
