package parser

import (
	"context"
	"time"

	"todome/internal/model"
)

// HighlightType classifies what a highlighted substring was recognized as.
type HighlightType string

const (
	HighlightDate       HighlightType = "date"
	HighlightProject    HighlightType = "project"
	HighlightTag        HighlightType = "tag"
	HighlightPriority   HighlightType = "priority"
	HighlightRecurrence HighlightType = "recurrence"
)

// Highlight marks a recognized substring of the original input so a UI can
// overlay it on the raw textbox contents. Start and End are byte offsets into
// the original, unmodified input; End-Start == len(Text).
type Highlight struct {
	Type  HighlightType `json:"type"`
	Text  string        `json:"text"`
	Start int           `json:"startPosition"`
	End   int           `json:"endPosition"`
	Value any           `json:"value"`
	Valid bool          `json:"valid"`
}

// DateMatch is one recognized date phrase, with an optional attached time
// phrase ("tomorrow at 3pm" carries both spans).
type DateMatch struct {
	Date    *time.Time // nil when the phrase was recognized but not a real date (e.g. Feb 30)
	Text    string
	Start   int
	End     int
	Valid   bool
	HasTime bool

	// Attached time phrase, zero-valued when absent.
	TimeOfDay string // "HH:MM" (24h), empty when missing or out of range
	TimeText  string
	TimeStart int
	TimeEnd   int
	TimeValid bool
}

// PriorityMatch is a recognized priority marker (p0..p4 / !0..!4).
type PriorityMatch struct {
	Priority *int // nil when the numeral fell outside 0..4
	Text     string
	Start    int
	End      int
	Valid    bool
}

// ProjectMatch is a recognized #path token, resolved against the caller's
// project namespace. A syntactically valid but unresolved path still counts
// as Valid for highlighting.
type ProjectMatch struct {
	Ref   *model.ProjectRef // nil when not found or not resolved
	Path  string
	Text  string
	Start int
	End   int
	Found bool
}

// TagMatch is a recognized @name token.
type TagMatch struct {
	Ref        *model.TagRef // nil when unresolved (preview mode, unknown name)
	Name       string
	Text       string
	Start      int
	End        int
	WasCreated bool
}

// Result is the aggregate output of one parse call. Wire field names match
// what the HTTP layer emits; offsets refer to the original input string.
type Result struct {
	Title      string            `json:"title"`
	DueDate    *string           `json:"dueDate"` // YYYY-MM-DD
	DueTime    *string           `json:"dueTime"` // HH:MM
	Project    *model.ProjectRef `json:"project"`
	Tags       []model.TagRef    `json:"tags"`
	Priority   *int              `json:"priority"`
	Recurrence *RecurrenceRule   `json:"recurrence,omitempty"`
	Highlights []Highlight       `json:"highlights"`
	Warnings   []string          `json:"warnings"`
}

// ProjectResolver looks up a project by its slash-separated path,
// case-insensitively, scoped to the current user. Returns (nil, nil) when no
// project matches; an error only on I/O failure.
type ProjectResolver interface {
	ResolveProjectPath(ctx context.Context, path string) (*model.ProjectRef, error)
}

// TagResolver resolves a tag name to a reference. In preview mode it must
// only look up; in commit mode it creates missing tags. The returned bool is
// true when a tag was created by this call.
type TagResolver interface {
	ResolveTag(ctx context.Context, name string, preview bool) (*model.TagRef, bool, error)
}
