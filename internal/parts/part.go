package parts

import "slices"

// Part is a virtual electronics part in a platform library.
type Part struct {
	ID       string
	Name     string
	Category string // free-form label such as "Sensor"; not a Bucket
	Glyph    string
}

// Library is the immutable, ordered part collection for one platform.
type Library struct {
	parts []Part
	byID  map[string]int
}

// NewLibrary builds a Library from parts in authored order. When an ID
// repeats, the first occurrence wins.
func NewLibrary(parts []Part) *Library {
	lib := &Library{
		parts: make([]Part, 0, len(parts)),
		byID:  make(map[string]int, len(parts)),
	}
	for _, p := range parts {
		if _, dup := lib.byID[p.ID]; dup {
			continue
		}
		lib.byID[p.ID] = len(lib.parts)
		lib.parts = append(lib.parts, p)
	}
	return lib
}

// Get returns the part with the given ID.
func (l *Library) Get(id string) (Part, bool) {
	if l == nil {
		return Part{}, false
	}
	i, ok := l.byID[id]
	if !ok {
		return Part{}, false
	}
	return l.parts[i], true
}

// Has reports whether the library contains id.
func (l *Library) Has(id string) bool {
	_, ok := l.Get(id)
	return ok
}

// All returns every part in library order.
func (l *Library) All() []Part {
	if l == nil {
		return nil
	}
	return slices.Clone(l.parts)
}

// Len returns the number of parts.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.parts)
}

// index returns the library position of id, or -1.
func (l *Library) index(id string) int {
	if i, ok := l.byID[id]; ok {
		return i
	}
	return -1
}
