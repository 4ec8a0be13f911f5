package outbound

import "context"

// ClipCreatorPort builds a single video clip from a still image and its
// narration track. The clip's duration equals the narration's duration and
// the narration is the clip's sole audio track.
type ClipCreatorPort interface {
	Create(ctx context.Context, imagePath string, audioPath string) (string, error)
}
