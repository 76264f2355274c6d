package usecase

import (
	"regexp"
	"slices"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// coalesce returns newVal when it is non-empty, otherwise the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// coalescePtr dereferences newVal when set, otherwise keeps the existing value.
func coalescePtr[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func isSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// uniqueIDs trims, drops empties and removes duplicates while keeping the first
// occurrence order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
