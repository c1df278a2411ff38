package parser_test

import (
	"context"
	"encoding/json"
	"testing"

	"todome/internal/model"
	"todome/internal/parser"
)

func TestResultJSONRoundTrip(t *testing.T) {
	projects := &mockProjectResolver{byPath: map[string]*model.ProjectRef{
		"work": {ID: "proj-1", Name: "Work"},
	}}
	tags := &mockTagResolver{known: map[string]*model.TagRef{
		"urgent": {ID: "tag-1", Name: "urgent", Color: "#ff0000"},
	}}
	p := newTestParser(t, projects, tags)

	res, err := p.Parse(context.Background(), "Review proposal #work @urgent tomorrow at 3pm p3", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Wire field names are part of the contract.
	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal to map: %v", err)
	}
	for _, field := range []string{"title", "dueDate", "dueTime", "project", "tags", "priority", "highlights", "warnings"} {
		if _, ok := wire[field]; !ok {
			t.Errorf("wire form missing field %q", field)
		}
	}
	highlights, _ := wire["highlights"].([]any)
	if len(highlights) == 0 {
		t.Fatal("wire form has no highlights")
	}
	first, _ := highlights[0].(map[string]any)
	for _, field := range []string{"type", "text", "startPosition", "endPosition", "valid"} {
		if _, ok := first[field]; !ok {
			t.Errorf("highlight missing field %q", field)
		}
	}

	var back parser.Result
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Title != res.Title {
		t.Errorf("Title = %q, want %q", back.Title, res.Title)
	}
	if back.DueDate == nil || *back.DueDate != *res.DueDate {
		t.Errorf("DueDate = %v, want %v", back.DueDate, *res.DueDate)
	}
	if back.Priority == nil || *back.Priority != *res.Priority {
		t.Errorf("Priority = %v, want %v", back.Priority, *res.Priority)
	}
	if len(back.Highlights) != len(res.Highlights) {
		t.Fatalf("len(Highlights) = %d, want %d", len(back.Highlights), len(res.Highlights))
	}
	for i := range back.Highlights {
		got, want := back.Highlights[i], res.Highlights[i]
		if got.Type != want.Type || got.Text != want.Text ||
			got.Start != want.Start || got.End != want.End || got.Valid != want.Valid {
			t.Errorf("highlight %d = %+v, want %+v", i, got, want)
		}
	}
	// Entity references resolve by ID over the wire, not by reconstruction.
	if back.Project == nil || back.Project.ID != "proj-1" {
		t.Errorf("Project = %+v, want proj-1", back.Project)
	}
	if len(back.Tags) != 1 || back.Tags[0].ID != "tag-1" {
		t.Errorf("Tags = %+v, want tag-1", back.Tags)
	}
}
