package tag

import (
	"strings"
	"unicode/utf8"

	"coachbook/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 64

var (
	ErrEmptyTagString = errs.Class("tag string contains no tags", errs.ErrValidation)
	ErrTagTooLong     = errs.Class("tag name exceeds maximum length", errs.ErrValidation)
)

// Tag is a shared label. A tag with no posts attached must not persist.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// NormalizeName is the only text rule tags get: trimmed and lower-cased.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseTagString splits a comma separated list into unique normalized names,
// keeping first-seen order.
func ParseTagString(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		name := NormalizeName(p)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return nil, ErrTagTooLong
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, ErrEmptyTagString
	}
	return names, nil
}
