package parts

import (
	"slices"
	"sync"
)

// ChangeKind identifies the committed operation reported to observers.
type ChangeKind int

const (
	ChangeAssign ChangeKind = iota
	ChangeUnassign
	ChangeReset
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAssign:
		return "assign"
	case ChangeUnassign:
		return "unassign"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes one committed mutation of a Store. From is empty when
// the part was previously unassigned; To is empty after an unassign.
type Change struct {
	Kind   ChangeKind
	PartID string
	From   Bucket
	To     Bucket
}

// Store holds the categorization state of one playground: which parts sit
// in which bucket. A part is in at most one bucket at any time.
type Store struct {
	lib *Library

	mu       sync.RWMutex
	buckets  map[Bucket][]string
	location map[string]Bucket

	obsMu     sync.Mutex
	observers []func(Change)
}

// NewStore creates an empty Store over lib.
func NewStore(lib *Library) *Store {
	if lib == nil {
		lib = NewLibrary(nil)
	}
	s := &Store{lib: lib}
	s.clear()
	return s
}

func (s *Store) clear() {
	s.buckets = make(map[Bucket][]string, len(Buckets()))
	for _, b := range Buckets() {
		s.buckets[b] = nil
	}
	s.location = make(map[string]Bucket)
}

// Library returns the part library the store sorts.
func (s *Store) Library() *Library {
	return s.lib
}

// OnChange registers fn to be called after every committed mutation.
func (s *Store) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(c Change) {
	s.obsMu.Lock()
	obs := slices.Clone(s.observers)
	s.obsMu.Unlock()
	for _, fn := range obs {
		fn(c)
	}
}

// Assign moves partID into target, removing it from whichever bucket held
// it. Assigning to the bucket that already holds the part moves it to the
// end. Unknown parts and unknown buckets are ignored.
func (s *Store) Assign(partID string, target Bucket) {
	if !target.Valid() || !s.lib.Has(partID) {
		return
	}

	s.mu.Lock()
	from, had := s.location[partID]
	if had {
		s.buckets[from] = remove(s.buckets[from], partID)
	}
	s.buckets[target] = append(s.buckets[target], partID)
	s.location[partID] = target
	s.mu.Unlock()

	s.notify(Change{Kind: ChangeAssign, PartID: partID, From: from, To: target})
}

// Unassign removes partID from bucket. It does nothing if the part is not
// in that bucket.
func (s *Store) Unassign(bucket Bucket, partID string) {
	s.mu.Lock()
	if cur, ok := s.location[partID]; !ok || cur != bucket {
		s.mu.Unlock()
		return
	}
	s.buckets[bucket] = remove(s.buckets[bucket], partID)
	delete(s.location, partID)
	s.mu.Unlock()

	s.notify(Change{Kind: ChangeUnassign, PartID: partID, From: bucket})
}

// Reset empties every bucket.
func (s *Store) Reset() {
	s.mu.Lock()
	s.clear()
	s.mu.Unlock()

	s.notify(Change{Kind: ChangeReset})
}

// Contents returns the parts in bucket in insertion order. It returns nil
// for an unknown bucket.
func (s *Store) Contents(bucket Bucket) []Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.buckets[bucket])
}

// Location reports which bucket holds partID.
func (s *Store) Location(partID string) (Bucket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.location[partID]
	return b, ok
}

// Unassigned returns the library parts not in any bucket, in library order.
func (s *Store) Unassigned() []Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Part
	for _, p := range s.lib.parts {
		if _, ok := s.location[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Snapshot returns a copy of every bucket's contents.
func (s *Store) Snapshot() map[Bucket][]Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Bucket][]Part, len(s.buckets))
	for b, ids := range s.buckets {
		out[b] = s.resolve(ids)
	}
	return out
}

// Assigned returns how many parts are currently in a bucket.
func (s *Store) Assigned() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.location)
}

func (s *Store) resolve(ids []string) []Part {
	if ids == nil {
		return nil
	}
	out := make([]Part, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.lib.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

func remove(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
}
