package repository

// CreateTagOptions holds parameters for inserting a new tag.
type CreateTagOptions struct {
	UserID string
	Name   string
	Color  string
}

// GetOneTagOptions holds filter parameters for fetching a single tag. All
// non-empty fields are applied as AND conditions; Name is matched
// case-insensitively.
type GetOneTagOptions struct {
	UserID string
	ID     string
	Name   string
}

// ListTagsOptions holds filter parameters for listing tags.
type ListTagsOptions struct {
	UserID string
	IDs    []string
}
