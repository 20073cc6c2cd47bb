package playground

import (
	"github.com/abhisek/stemlab/internal/parts"
	"github.com/abhisek/stemlab/internal/plans"
)

// Platform bundles the part library and lesson plans for one target.
type Platform struct {
	Target  Target
	Name    string
	Library *parts.Library
	Plans   plans.Book
}

// Platforms indexes platforms by target.
type Platforms map[Target]*Platform

// Get returns the platform for t.
func (ps Platforms) Get(t Target) (*Platform, bool) {
	p, ok := ps[t]
	return p, ok
}
