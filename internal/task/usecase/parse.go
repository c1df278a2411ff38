package usecase

import (
	"context"

	"todome/internal/model"
	"todome/internal/parser"
)

// scopedProjects binds the project use case to one user's namespace so it
// satisfies parser.ProjectResolver.
type scopedProjects struct {
	uc interface {
		Resolve(ctx context.Context, sc model.Scope, path string) (*model.ProjectRef, error)
	}
	sc model.Scope
}

func (s scopedProjects) ResolveProjectPath(ctx context.Context, path string) (*model.ProjectRef, error) {
	return s.uc.Resolve(ctx, s.sc, path)
}

// scopedTags binds the tag use case to one user's namespace so it satisfies
// parser.TagResolver.
type scopedTags struct {
	uc interface {
		Resolve(ctx context.Context, sc model.Scope, name string, preview bool) (*model.TagRef, bool, error)
	}
	sc model.Scope
}

func (s scopedTags) ResolveTag(ctx context.Context, name string, preview bool) (*model.TagRef, bool, error) {
	return s.uc.Resolve(ctx, s.sc, name, preview)
}

func (uc *implUseCase) newParser(sc model.Scope) *parser.Parser {
	return parser.New(uc.l, uc.cal,
		scopedProjects{uc: uc.projects, sc: sc},
		scopedTags{uc: uc.tags, sc: sc},
	).WithClock(uc.now)
}

// Parse runs the natural-language parser over input without creating a task.
// commit=false keeps tag resolution lookup-only (preview mode).
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input string, commit bool) (parser.Result, error) {
	return uc.newParser(sc).Parse(ctx, input, !commit)
}
