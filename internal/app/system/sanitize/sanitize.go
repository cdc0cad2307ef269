// Package sanitize strips markup from user-supplied free text.
//
// Attendance notes are plain text; anything that looks like HTML is
// removed before the record is persisted so stored notes are safe to
// echo into any downstream export.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func strict() *bluemonday.Policy {
	once.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text returns s with all HTML elements and attributes removed and
// surrounding whitespace trimmed.
func Text(s string) string {
	return strings.TrimSpace(strict().Sanitize(s))
}
