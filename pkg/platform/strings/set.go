// Package strings provides string-set helpers for free-text lists such as
// uploaded document names.
package strings

import (
	"strings"
)

// NormalizeSet trims each element, drops empties and removes duplicates.
// First occurrence wins, so the original order is preserved.
//
//	NormalizeSet([]string{" invoice.pdf ", "assay.pdf", "invoice.pdf", ""})
//	// []string{"invoice.pdf", "assay.pdf"}
func NormalizeSet(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// Union appends the members of added that are not already in base.
// Neither input is modified.
func Union(base, added []string) []string {
	out := make([]string, 0, len(base)+len(added))
	out = append(out, base...)
	out = append(out, added...)
	return NormalizeSet(out)
}

// ContainsFold reports whether values holds s, ignoring case and surrounding space.
func ContainsFold(values []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
