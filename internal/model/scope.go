package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity a request acts on behalf of.
// The service runs single-user; the user id comes from config, not auth.
type Scope struct {
	UserID string
}

// ProjectRef is an opaque reference to a resolved project.
// The parser depends on refs, never on persistence entities.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagRef is an opaque reference to a resolved tag.
type TagRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
