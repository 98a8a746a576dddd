package posts

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"board-service/internal/errs"
)

const (
	MaxTags      = 5
	MaxTagLength = 20
)

// NormalizeTag lowercases, trims, and replaces internal whitespace runs with
// a single hyphen. "Events " becomes "events", "Study Group" becomes
// "study-group".
func NormalizeTag(raw string) (string, error) {
	t := strings.Join(strings.Fields(strings.ToLower(raw)), "-")
	if t == "" {
		return "", errs.Validation("tags", "tag is empty")
	}
	if utf8.RuneCountInString(t) > MaxTagLength {
		return "", errs.Validation("tags", fmt.Sprintf("tag %q exceeds %d characters", t, MaxTagLength))
	}
	return t, nil
}

// NormalizeTags applies NormalizeTag to each entry and rejects duplicates
// that collide after normalization.
func NormalizeTags(raw []string) ([]string, error) {
	if len(raw) > MaxTags {
		return nil, errs.Validation("tags", fmt.Sprintf("at most %d tags allowed", MaxTags))
	}
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		t, err := NormalizeTag(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[t]; dup {
			return nil, errs.Validation("tags", fmt.Sprintf("duplicate tag %q", t))
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
