package repository

// CreateProjectOptions holds parameters for inserting a new project.
type CreateProjectOptions struct {
	UserID      string
	Name        string
	Path        string // full lowercase path
	ParentID    string
	Description string
}

// GetOneProjectOptions holds filter parameters for fetching a single
// project. All non-empty fields are applied as AND conditions; Path is
// matched case-insensitively.
type GetOneProjectOptions struct {
	UserID string
	ID     string
	Path   string
}

// ListProjectsOptions holds filter parameters for listing projects.
type ListProjectsOptions struct {
	UserID   string
	ParentID string
}
