package repository

import (
	"context"

	"todome/internal/model"
)

// Repository defines all data access methods for the Tag entity.
type Repository interface {
	CreateTag(ctx context.Context, opt CreateTagOptions) (model.Tag, error)
	GetOneTag(ctx context.Context, opt GetOneTagOptions) (model.Tag, error)
	ListTags(ctx context.Context, opt ListTagsOptions) ([]model.Tag, error)
	DeleteTag(ctx context.Context, userID, id string) error
}
