package outbound

import (
	"context"

	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

// StoryStorePort is the persistence gateway for story records. Saves are
// append-only and unique on story id; FindByID returns nil without error
// when no record exists.
type StoryStorePort interface {
	Save(ctx context.Context, record domain.StoryRecord) error
	FindByID(ctx context.Context, storyID string) (*domain.StoryRecord, error)
}
