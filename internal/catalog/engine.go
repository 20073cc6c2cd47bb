package catalog

import "slices"

// Engine answers catalog queries over an immutable lesson collection.
type Engine struct {
	lessons []Lesson
	byID    map[string]int
	opts    []Option
}

// NewEngine creates an Engine over a private copy of lessons. When an ID
// repeats, Lesson returns the first occurrence.
func NewEngine(lessons []Lesson, opts ...Option) *Engine {
	e := &Engine{
		lessons: make([]Lesson, len(lessons)),
		byID:    make(map[string]int, len(lessons)),
		opts:    opts,
	}
	for i, l := range lessons {
		e.lessons[i] = l.clone()
		if _, dup := e.byID[l.ID]; dup {
			continue
		}
		e.byID[l.ID] = i
	}
	return e
}

// Query filters and sorts the collection. See Run.
func (e *Engine) Query(q Query) []Lesson {
	return Run(e.lessons, q, e.opts...)
}

// Lessons returns the full collection in authored order.
func (e *Engine) Lessons() []Lesson {
	out := make([]Lesson, len(e.lessons))
	for i, l := range e.lessons {
		out[i] = l.clone()
	}
	return out
}

// Lesson returns the lesson with the given ID.
func (e *Engine) Lesson(id string) (Lesson, bool) {
	i, ok := e.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return e.lessons[i].clone(), true
}

// Len returns the number of lessons in the collection.
func (e *Engine) Len() int {
	return len(e.lessons)
}

// CategoriesInUse returns the distinct categories present in the collection,
// in order of first appearance.
func (e *Engine) CategoriesInUse() []Category {
	var out []Category
	for _, l := range e.lessons {
		if !slices.Contains(out, l.Category) {
			out = append(out, l.Category)
		}
	}
	return out
}
