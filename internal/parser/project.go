package parser

import (
	"context"
	"regexp"
)

// A hashtag-led path of slash-separated segments: "#work", "#work/reviews".
// Anchored at a space or string boundary so "c#4" never matches.
var projectRe = regexp.MustCompile(`(?:^|\s)(#([A-Za-z0-9_-]+(?:/[A-Za-z0-9_-]+)*))`)

// extractProjects returns every syntactic #path token, unresolved. The
// coordinator honors only the first one per parse call.
func extractProjects(input string) []ProjectMatch {
	var matches []ProjectMatch
	for _, m := range projectRe.FindAllStringSubmatchIndex(input, -1) {
		matches = append(matches, ProjectMatch{
			Path:  input[m[4]:m[5]],
			Text:  input[m[2]:m[3]],
			Start: m[2],
			End:   m[3],
		})
	}
	return matches
}

// resolveProject resolves the match path through the caller-supplied
// collaborator. Not-found is reported via Found, never as an error.
func resolveProject(ctx context.Context, resolver ProjectResolver, pm *ProjectMatch) error {
	ref, err := resolver.ResolveProjectPath(ctx, pm.Path)
	if err != nil {
		return err
	}
	if ref != nil {
		pm.Ref = ref
		pm.Found = true
	}
	return nil
}
