package picker

import "strings"

// globPattern normalizes ".png", "png" and "*.png" to "*.png". "*" stays as is.
func globPattern(p string) string {
	p = strings.TrimSpace(p)
	switch {
	case p == "" || strings.HasPrefix(p, "*"):
		return p
	case strings.HasPrefix(p, "."):
		return "*" + p
	default:
		return "*." + p
	}
}

// extension strips a pattern to the bare extension ("*.png" -> "png").
// The second result is false for the match-all pattern.
func extension(p string) (string, bool) {
	p = strings.TrimPrefix(globPattern(p), "*")
	p = strings.TrimPrefix(p, ".")
	if p == "" || p == "*" {
		return "", false
	}
	return p, true
}

func globPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if g := globPattern(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// extensions returns the bare extensions of patterns. matchAll is true when
// one of them accepts every file.
func extensions(patterns []string) (exts []string, matchAll bool) {
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		ext, ok := extension(p)
		if !ok {
			matchAll = true
			continue
		}
		exts = append(exts, ext)
	}
	return exts, matchAll
}

// filterGroup is a named list of glob patterns, the common form of file-type
// choices and the plain file-type filter.
type filterGroup struct {
	Name     string
	Patterns []string
}

// filterGroups orders the named choices first, followed by the plain filter.
func (o Options) filterGroups() []filterGroup {
	var groups []filterGroup
	for _, c := range o.FileTypeChoices {
		patterns := globPatterns(c.Extensions)
		if len(patterns) == 0 {
			continue
		}
		groups = append(groups, filterGroup{Name: c.Label, Patterns: patterns})
	}
	if patterns := globPatterns(o.FileTypeFilter); len(patterns) > 0 {
		groups = append(groups, filterGroup{Name: filterName(patterns), Patterns: patterns})
	}
	return groups
}

func filterName(patterns []string) string {
	if len(patterns) == 1 && patterns[0] == "*" {
		return "All files"
	}
	return "Files (" + strings.Join(patterns, ", ") + ")"
}
