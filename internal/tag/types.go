package tag

// CreateTagInput is the input for explicit tag creation.
type CreateTagInput struct {
	Name  string
	Color string
}
