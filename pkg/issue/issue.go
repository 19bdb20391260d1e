// Package issue provides the typed view over issue-tracker records.
package issue

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Issue represents a tracker issue. It is immutable and constructed from an
// issue-tracker record.
type Issue struct {
	// Key is the project-prefixed identifier, e.g. "ARROW-123".
	Key string `json:"key"`
	// Type is the tracker category name, e.g. "Bug".
	Type string `json:"type"`
	// Summary is the issue title.
	Summary string `json:"summary"`
}

// Project returns the project prefix of the issue key.
func (i Issue) Project() string {
	project, _, err := ParseKey(i.Key)
	if err != nil {
		return ""
	}
	return project
}

// Number returns the numeric suffix of the issue key, or 0 if the key does
// not parse.
func (i Issue) Number() int {
	_, number, err := ParseKey(i.Key)
	if err != nil {
		return 0
	}
	return number
}

// ParseKey splits a project-prefixed issue key into its project and number.
func ParseKey(key string) (string, int, error) {
	separator := strings.LastIndex(key, "-")
	if separator <= 0 || separator == len(key)-1 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	number, err := strconv.Atoi(key[separator+1:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return key[:separator], number, nil
}

// Sort orders issues in place ascending by (project, number).
func Sort(issues []Issue) {
	sort.Slice(issues, func(a, b int) bool {
		if issues[a].Project() != issues[b].Project() {
			return issues[a].Project() < issues[b].Project()
		}
		return issues[a].Number() < issues[b].Number()
	})
}
