package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll is the category filter value that matches every lesson.
const FilterAll = "all"

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortTitle      SortKey = "title"
	SortDifficulty SortKey = "difficulty"
	SortCategory   SortKey = "category"
	SortProgress   SortKey = "progress"
)

// SortKeys returns all sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortTitle, SortDifficulty, SortCategory, SortProgress}
}

// ParseSortKey converts a string to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want one of title, difficulty, category, progress)", s)
}

// Label returns a human-readable name for a sort key.
func (k SortKey) Label() string {
	switch k {
	case SortTitle:
		return "Title"
	case SortDifficulty:
		return "Difficulty"
	case SortCategory:
		return "Category"
	case SortProgress:
		return "Progress"
	default:
		return string(k)
	}
}

// Query describes one projection of the lesson catalog.
type Query struct {
	// Search is matched case-insensitively as a substring of the title,
	// description or any tag. Empty matches everything.
	Search string

	// Category is FilterAll (or empty) or one category value.
	Category string

	// Sort orders the filtered lessons.
	Sort SortKey
}

type options struct {
	locale language.Tag
}

// Option configures query evaluation.
type Option func(*options)

// WithLocale sets the collation locale used for title and category ordering.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

func buildOptions(opts []Option) options {
	o := options{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run filters and sorts lessons according to q. The input slice is never
// modified and the result shares no mutable state with it. An unmatched
// query yields an empty, non-nil slice.
func Run(lessons []Lesson, q Query, opts ...Option) []Lesson {
	o := buildOptions(opts)

	fold := cases.Fold()
	term := ""
	if q.Search != "" {
		term = fold.String(q.Search)
	}

	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if q.Category != "" && q.Category != FilterAll && string(l.Category) != q.Category {
			continue
		}
		if term != "" && !matches(l, term, fold) {
			continue
		}
		out = append(out, l.clone())
	}

	// Collators keep internal buffers, so each run gets its own.
	coll := collate.New(o.locale)

	switch q.Sort {
	case SortTitle:
		slices.SortStableFunc(out, func(a, b Lesson) int {
			return coll.CompareString(a.Title, b.Title)
		})
	case SortDifficulty:
		slices.SortStableFunc(out, func(a, b Lesson) int {
			return cmp.Compare(a.Difficulty.Rank(), b.Difficulty.Rank())
		})
	case SortCategory:
		slices.SortStableFunc(out, func(a, b Lesson) int {
			return coll.CompareString(string(a.Category), string(b.Category))
		})
	case SortProgress:
		// Highest progress first.
		slices.SortStableFunc(out, func(a, b Lesson) int {
			return cmp.Compare(b.Progress, a.Progress)
		})
	}

	return out
}

// matches reports whether the folded term occurs in the title, description
// or any tag of l.
func matches(l Lesson, term string, fold cases.Caser) bool {
	if strings.Contains(fold.String(l.Title), term) {
		return true
	}
	if strings.Contains(fold.String(l.Description), term) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(fold.String(tag), term) {
			return true
		}
	}
	return false
}
