package catalog

import (
	"regexp"
	"slices"
)

// variablePattern matches {{ identifier ... }} placeholders and
// captures the leading identifier only. Anything after it (filters,
// arithmetic) is skipped: the result seeds an input form, it does not
// validate the template.
var variablePattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)[^}]*\}\}`)

// ExtractVariables returns the sorted set of placeholder identifiers
// appearing in the template text.
func ExtractVariables(text string) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, match := range variablePattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
