package yamlj

import "strings"

// minifyText implements spec §6's "J minify" operation: concatenate
// each line's trimmed contents with single spaces, with no reparse.
func minifyText(source string) string {
	lines := strings.Split(source, "\n")
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
