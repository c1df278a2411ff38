package parser

import (
	"context"
	"regexp"
	"strings"
)

// An at-sign-led name token: "@urgent", "@follow-up". Anchored at a space or
// string boundary so the @ inside an email address never matches.
var tagRe = regexp.MustCompile(`(?:^|\s)(@([A-Za-z0-9_-]+))`)

// extractTags returns the syntactic @name tokens, deduplicated
// case-insensitively. Only the first occurrence of a name keeps its span.
func extractTags(input string) []TagMatch {
	var matches []TagMatch
	seen := make(map[string]bool)
	for _, m := range tagRe.FindAllStringSubmatchIndex(input, -1) {
		name := input[m[4]:m[5]]
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		matches = append(matches, TagMatch{
			Name:  name,
			Text:  input[m[2]:m[3]],
			Start: m[2],
			End:   m[3],
		})
	}
	return matches
}

// resolveTags resolves the matches at the given indices through the
// collaborator. In preview mode unknown names stay unresolved; in commit mode
// they are created. The first resolver error aborts resolution of the
// remaining tags; the count of matches processed before the error is
// returned either way.
func resolveTags(ctx context.Context, resolver TagResolver, matches []TagMatch, indices []int, preview bool) (int, error) {
	for n, idx := range indices {
		ref, created, err := resolver.ResolveTag(ctx, matches[idx].Name, preview)
		if err != nil {
			return n, err
		}
		matches[idx].Ref = ref
		matches[idx].WasCreated = created
	}
	return len(indices), nil
}
