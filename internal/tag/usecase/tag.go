package usecase

import (
	"context"
	"strings"

	"todome/internal/model"
	"todome/internal/tag"
	repo "todome/internal/tag/repository"
)

// Create creates a new tag after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input tag.CreateTagInput) (model.Tag, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Tag{}, tag.ErrEmptyName
	}

	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{UserID: sc.UserID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "tag.Create GetOneTag: %v", err)
		return model.Tag{}, err
	}
	if existing.ID != "" {
		return model.Tag{}, tag.ErrDuplicateName
	}

	t, err := uc.repo.CreateTag(ctx, repo.CreateTagOptions{
		UserID: sc.UserID,
		Name:   name,
		Color:  input.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "tag.Create CreateTag: %v", err)
		return model.Tag{}, err
	}
	return t, nil
}

// List returns all tags of the scoped user ordered by name.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Tag, error) {
	tags, err := uc.repo.ListTags(ctx, repo.ListTagsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "tag.List ListTags: %v", err)
		return nil, err
	}
	return tags, nil
}

// Delete removes a tag by ID. Returns ErrNotFound when missing.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "tag.Delete GetOneTag: %v", err)
		return err
	}
	if existing.ID == "" {
		return tag.ErrNotFound
	}
	if err := uc.repo.DeleteTag(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "tag.Delete DeleteTag: %v", err)
		return err
	}
	return nil
}

// Resolve looks a tag up by name. In preview mode unknown names stay
// unresolved; in commit mode they are created so the parse can reference
// them. The returned bool reports whether a tag was created.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, name string, preview bool) (*model.TagRef, bool, error) {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{UserID: sc.UserID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "tag.Resolve GetOneTag: %v", err)
		return nil, false, err
	}
	if existing.ID != "" {
		return &model.TagRef{ID: existing.ID, Name: existing.Name, Color: existing.Color}, false, nil
	}
	if preview {
		return nil, false, nil
	}

	created, err := uc.repo.CreateTag(ctx, repo.CreateTagOptions{UserID: sc.UserID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "tag.Resolve CreateTag: %v", err)
		return nil, false, err
	}
	return &model.TagRef{ID: created.ID, Name: created.Name, Color: created.Color}, true, nil
}
