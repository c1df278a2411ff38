package parser

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"todome/internal/model"
	"todome/pkg/datemath"
	"todome/pkg/log"
)

// Parser turns one freeform input string into structured task attributes,
// highlight spans and warnings. It holds no mutable state between calls and
// is safe for concurrent use.
type Parser struct {
	l        log.Logger
	cal      *datemath.Calendar
	projects ProjectResolver
	tags     TagResolver
	now      func() time.Time
}

// New creates a Parser. The resolvers are the only collaborators allowed to
// touch persistent state, and only outside preview mode.
func New(l log.Logger, cal *datemath.Calendar, projects ProjectResolver, tags TagResolver) *Parser {
	return &Parser{
		l:        l,
		cal:      cal,
		projects: projects,
		tags:     tags,
		now:      time.Now,
	}
}

// WithClock overrides the reference clock. Test use only.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	p.now = now
	return p
}

// span is one candidate highlight before overlap resolution.
type span struct {
	start, end int
	typ        HighlightType
	dateIdx    int  // index into dates, -1 otherwise
	timePart   bool // true for the attached time sub-span of a date match
	prioIdx    int
	projIdx    int
	tagIdx     int
	recIdx     int
}

// Parse runs every extractor over the original input, resolves overlaps,
// strips the surviving spans out of the title and assembles the result.
//
// Parse never fails on input alone: a completely unparseable string yields a
// Result whose Title equals the trimmed input. A non-nil error is always a
// *ResolutionError from one resolver category; the Result is still populated
// for the other categories.
func (p *Parser) Parse(ctx context.Context, input string, preview bool) (Result, error) {
	now := p.now()

	dates := extractDates(input, now, p.cal)
	prios := extractPriorities(input)
	recs := extractRecurrences(input, now, p.cal)
	projs := extractProjects(input)
	tags := extractTags(input)

	spans := collectSpans(dates, prios, recs, projs, tags)
	kept := resolveOverlaps(spans)

	res := Result{
		Tags:       []model.TagRef{},
		Highlights: []Highlight{},
		Warnings:   []string{},
	}

	var resErr error

	// Authoritative value per singleton category: the first surviving span
	// wins, later ones only produce warnings.
	firstDate, firstPrio, firstProj, firstRec := -1, -1, -1, -1
	var keptTags []int
	for _, s := range kept {
		switch {
		case s.typ == HighlightDate && !s.timePart:
			if firstDate == -1 {
				firstDate = s.dateIdx
			} else {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"duplicate date %q ignored, using %q", dates[s.dateIdx].Text, dates[firstDate].Text))
			}
		case s.typ == HighlightPriority:
			if firstPrio == -1 {
				firstPrio = s.prioIdx
			} else {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"duplicate priority %q ignored, using %q", prios[s.prioIdx].Text, prios[firstPrio].Text))
			}
		case s.typ == HighlightProject:
			if firstProj == -1 {
				firstProj = s.projIdx
			} else {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"duplicate project reference %q ignored, using %q", projs[s.projIdx].Text, projs[firstProj].Text))
			}
		case s.typ == HighlightRecurrence:
			if firstRec == -1 {
				firstRec = s.recIdx
			} else {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"duplicate recurrence %q ignored, using %q", recs[s.recIdx].Text, recs[firstRec].Text))
			}
		case s.typ == HighlightTag:
			keptTags = append(keptTags, s.tagIdx)
		}
	}

	// Resolve the authoritative project reference.
	if firstProj >= 0 {
		if err := resolveProject(ctx, p.projects, &projs[firstProj]); err != nil {
			p.l.Errorf(ctx, "parser: project resolution for %q: %v", projs[firstProj].Path, err)
			resErr = &ResolutionError{Category: HighlightProject, Err: err}
		} else if !projs[firstProj].Found {
			res.Warnings = append(res.Warnings, fmt.Sprintf("project not found: %s", projs[firstProj].Text))
		}
	}

	// Resolve only the tags whose spans survived overlap resolution, so
	// commit mode never creates a tag for a dropped span.
	resolved, err := resolveTags(ctx, p.tags, tags, keptTags, preview)
	if err != nil {
		p.l.Errorf(ctx, "parser: tag resolution: %v", err)
		if resErr == nil {
			resErr = &ResolutionError{Category: HighlightTag, Err: err}
		}
	}
	for n, idx := range keptTags {
		if n < resolved && tags[idx].Ref == nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("tag not found: %s", tags[idx].Text))
		}
	}

	res.Highlights = buildHighlights(kept, dates, prios, recs, projs, tags)
	res.Title = stripSpans(input, kept)

	if firstDate >= 0 {
		dm := dates[firstDate]
		if dm.Date != nil {
			formatted := dm.Date.Format("2006-01-02")
			res.DueDate = &formatted
		}
		if dm.HasTime {
			t := dm.TimeOfDay
			res.DueTime = &t
		}
	}
	if firstPrio >= 0 && prios[firstPrio].Priority != nil {
		v := *prios[firstPrio].Priority
		res.Priority = &v
	}
	if firstProj >= 0 && projs[firstProj].Found {
		res.Project = projs[firstProj].Ref
	}
	if firstRec >= 0 {
		res.Recurrence = recs[firstRec]
	}
	for _, idx := range keptTags {
		if tags[idx].Ref != nil {
			res.Tags = append(res.Tags, *tags[idx].Ref)
		}
	}

	return res, resErr
}

func collectSpans(dates []DateMatch, prios []PriorityMatch, recs []*RecurrenceRule, projs []ProjectMatch, tags []TagMatch) []span {
	var spans []span
	for i, d := range dates {
		spans = append(spans, span{start: d.Start, end: d.End, typ: HighlightDate, dateIdx: i, prioIdx: -1, projIdx: -1, tagIdx: -1, recIdx: -1})
		if d.TimeText != "" {
			spans = append(spans, span{start: d.TimeStart, end: d.TimeEnd, typ: HighlightDate, dateIdx: i, timePart: true, prioIdx: -1, projIdx: -1, tagIdx: -1, recIdx: -1})
		}
	}
	for i, m := range prios {
		spans = append(spans, span{start: m.Start, end: m.End, typ: HighlightPriority, dateIdx: -1, prioIdx: i, projIdx: -1, tagIdx: -1, recIdx: -1})
	}
	for i, r := range recs {
		spans = append(spans, span{start: r.Start, end: r.End, typ: HighlightRecurrence, dateIdx: -1, prioIdx: -1, projIdx: -1, tagIdx: -1, recIdx: i})
	}
	for i, m := range projs {
		spans = append(spans, span{start: m.Start, end: m.End, typ: HighlightProject, dateIdx: -1, prioIdx: -1, projIdx: i, tagIdx: -1, recIdx: -1})
	}
	for i, m := range tags {
		spans = append(spans, span{start: m.Start, end: m.End, typ: HighlightTag, dateIdx: -1, prioIdx: -1, projIdx: -1, tagIdx: i, recIdx: -1})
	}
	return spans
}

// resolveOverlaps sorts spans by start ascending and drops any span that
// overlaps an earlier-starting survivor. On equal starts the longer span
// wins, so a recurrence phrase beats the weekday matched inside it.
func resolveOverlaps(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})
	kept := spans[:0]
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		kept = append(kept, s)
		lastEnd = s.end
	}
	return kept
}

func buildHighlights(kept []span, dates []DateMatch, prios []PriorityMatch, recs []*RecurrenceRule, projs []ProjectMatch, tags []TagMatch) []Highlight {
	highlights := make([]Highlight, 0, len(kept))
	for _, s := range kept {
		h := Highlight{Type: s.typ, Start: s.start, End: s.end}
		switch {
		case s.typ == HighlightDate && s.timePart:
			dm := dates[s.dateIdx]
			h.Text = dm.TimeText
			h.Valid = dm.TimeValid
			if dm.HasTime {
				h.Value = dm.TimeOfDay
			}
		case s.typ == HighlightDate:
			dm := dates[s.dateIdx]
			h.Text = dm.Text
			h.Valid = dm.Valid
			if dm.Date != nil {
				h.Value = dm.Date.Format("2006-01-02")
			}
		case s.typ == HighlightPriority:
			pm := prios[s.prioIdx]
			h.Text = pm.Text
			h.Valid = pm.Valid
			if pm.Priority != nil {
				h.Value = *pm.Priority
			}
		case s.typ == HighlightProject:
			pm := projs[s.projIdx]
			h.Text = pm.Text
			h.Valid = true // syntactically valid even when unresolved
			if pm.Found {
				h.Value = pm.Ref
			} else {
				h.Value = pm.Path
			}
		case s.typ == HighlightTag:
			tm := tags[s.tagIdx]
			h.Text = tm.Text
			h.Valid = true
			if tm.Ref != nil {
				h.Value = tm.Ref
			} else {
				h.Value = tm.Name
			}
		case s.typ == HighlightRecurrence:
			r := recs[s.recIdx]
			h.Text = r.Text
			h.Valid = true
			h.Value = r
		}
		highlights = append(highlights, h)
	}
	return highlights
}

// stripSpans removes every kept span from the input, then collapses runs of
// whitespace and trims. kept must be sorted by start ascending.
func stripSpans(input string, kept []span) string {
	var b strings.Builder
	pos := 0
	for _, s := range kept {
		if s.start > pos {
			b.WriteString(input[pos:s.start])
		}
		pos = s.end
	}
	if pos < len(input) {
		b.WriteString(input[pos:])
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
