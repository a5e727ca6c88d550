package metrics

import "strings"

// prometheus metric names only allow [a-zA-Z0-9_:]
var nameReplacer = strings.NewReplacer(" ", "_", ".", "_", "-", "_", "=", "_", "/", "_", ":", "_")

func FlattenName(name string) string {
	return nameReplacer.Replace(strings.TrimSpace(name))
}

// BuildFQName joins the non-empty parts with "_" and flattens the result.
func BuildFQName(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return FlattenName(strings.Join(parts, "_"))
}
