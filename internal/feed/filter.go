package feed

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"board-service/internal/posts"
)

// Filter is the feed's visible-subset predicate: every tag must be present
// on a post, and the query must match content or a tag case-insensitively.
// The two compose with AND.
type Filter struct {
	Tags  []string `json:"tags"`
	Query string   `json:"query"`
}

func (f Filter) IsZero() bool {
	return len(f.Tags) == 0 && f.Query == ""
}

// Matches mirrors the store-side predicate so locally cached results can be
// narrowed without a round trip.
func (f Filter) Matches(p posts.Post) bool {
	for _, want := range f.Tags {
		if !lo.Contains(p.Tags, want) {
			return false
		}
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Apply narrows a loaded result set to the posts the filter admits.
func (f Filter) Apply(list []posts.Post) []posts.Post {
	if f.IsZero() {
		return list
	}
	return lo.Filter(list, func(p posts.Post, _ int) bool {
		return f.Matches(p)
	})
}

// KnownTags is the union of tag sets over the loaded posts, sorted. It is
// derived state, recomputed whenever the post list changes, never persisted.
func KnownTags(list []posts.Post) []string {
	tags := lo.Uniq(lo.FlatMap(list, func(p posts.Post, _ int) []string {
		return p.Tags
	}))
	sort.Strings(tags)
	return tags
}
