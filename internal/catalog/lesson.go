package catalog

import "slices"

// Category identifies the hardware platform a lesson targets.
type Category string

const (
	CategoryMicrobit Category = "Micro:bit"
	CategoryArduino  Category = "Arduino"
)

// Categories returns the known lesson categories in display order.
func Categories() []Category {
	return []Category{CategoryMicrobit, CategoryArduino}
}

// Known reports whether c is one of the fixed lesson categories.
func (c Category) Known() bool {
	return slices.Contains(Categories(), c)
}

// Difficulty is the authored difficulty level of a lesson.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties returns all difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// Rank returns the sort rank of a difficulty. Unknown or empty values rank
// after Advanced so they never interleave with authored levels.
func (d Difficulty) Rank() int {
	switch d {
	case Beginner:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 3
	}
}

// Lesson is a single entry in the lesson catalog.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Difficulty  Difficulty
	Progress    int // percent complete, 0-100
	Tags        []string
	Glyph       string
}

// clone returns a copy that shares no mutable state with l.
func (l Lesson) clone() Lesson {
	l.Tags = slices.Clone(l.Tags)
	return l
}
