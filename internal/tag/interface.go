package tag

import (
	"context"

	"todome/internal/model"
)

// UseCase defines the business logic interface for the tag domain. It doubles
// as the parser's tag-resolution collaborator through Resolve.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTagInput) (model.Tag, error)
	List(ctx context.Context, sc model.Scope) ([]model.Tag, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Resolve looks a tag up by name, case-insensitively. In preview mode an
	// unknown name returns (nil, false, nil); otherwise it is created on the
	// fly and the returned bool reports the creation.
	Resolve(ctx context.Context, sc model.Scope, name string, preview bool) (*model.TagRef, bool, error)
}
