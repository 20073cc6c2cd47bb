// Package plans holds per-lesson tutorial plans and the step state machine
// used to walk through them.
package plans

import (
	"slices"

	"github.com/abhisek/stemlab/internal/parts"
)

// Step is one instruction in a lesson plan.
type Step struct {
	ID          string
	Title       string
	Description string
	Code        string // optional snippet shown under the description
}

// Plan is the tutorial attached to a lesson on one platform.
type Plan struct {
	LessonID    string
	Title       string
	Description string
	Steps       []Step

	// Parts lists required part IDs. An ID may repeat to express quantity.
	Parts []string
}

func (p Plan) clone() Plan {
	p.Steps = slices.Clone(p.Steps)
	p.Parts = slices.Clone(p.Parts)
	return p
}

// Book is a read-only lessonID -> Plan index for one platform.
type Book struct {
	plans map[string]Plan
}

// NewBook indexes plans by lesson ID. When a lesson ID repeats, the first
// plan wins.
func NewBook(plans []Plan) Book {
	b := Book{plans: make(map[string]Plan, len(plans))}
	for _, p := range plans {
		if _, dup := b.plans[p.LessonID]; dup {
			continue
		}
		b.plans[p.LessonID] = p.clone()
	}
	return b
}

// Lookup returns the plan for lessonID. A missing plan is not an error.
func (b Book) Lookup(lessonID string) (Plan, bool) {
	p, ok := b.plans[lessonID]
	if !ok {
		return Plan{}, false
	}
	return p.clone(), true
}

// IDs returns the lesson IDs that have plans, sorted.
func (b Book) IDs() []string {
	ids := make([]string, 0, len(b.plans))
	for id := range b.plans {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of plans.
func (b Book) Len() int {
	return len(b.plans)
}

// Requirement is a distinct required part and how many of it a plan needs.
type Requirement struct {
	Part     parts.Part
	Quantity int
}

// RequiredParts resolves plan.Parts against lib. The result has one entry
// per distinct part in library order; IDs missing from lib are skipped.
func RequiredParts(plan Plan, lib *parts.Library) []Requirement {
	counts := make(map[string]int, len(plan.Parts))
	for _, id := range plan.Parts {
		counts[id]++
	}

	var out []Requirement
	for _, p := range lib.All() {
		if n := counts[p.ID]; n > 0 {
			out = append(out, Requirement{Part: p, Quantity: n})
		}
	}
	return out
}

// MissingParts returns the part IDs in plan that lib does not contain, in
// first-appearance order.
func MissingParts(plan Plan, lib *parts.Library) []string {
	var out []string
	for _, id := range plan.Parts {
		if !lib.Has(id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
