package project

// CreateProjectInput is the input for project creation. Path is derived from
// the parent chain plus the lowercased name.
type CreateProjectInput struct {
	Name        string
	ParentID    string
	Description string
}

// ListProjectsInput filters the project listing.
type ListProjectsInput struct {
	ParentID string
}
