// Package playground hands a selected lesson to the matching platform
// playground and runs one playground session.
package playground

import (
	"errors"
	"fmt"

	"github.com/abhisek/stemlab/internal/catalog"
)

// Target identifies a platform playground.
type Target string

const (
	TargetMicrobit Target = "microbit"
	TargetArduino  Target = "arduino"
)

// Targets returns every playground target in display order.
func Targets() []Target {
	return []Target{TargetMicrobit, TargetArduino}
}

// ParseTarget converts a target identifier to a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetMicrobit, TargetArduino:
		return Target(s), nil
	}
	return "", fmt.Errorf("unknown platform %q (want microbit or arduino)", s)
}

// ErrUnknownCategory is returned when a lesson's category has no playground.
var ErrUnknownCategory = errors.New("no playground for lesson category")

// RouteError reports a lesson that cannot be routed to a playground.
type RouteError struct {
	LessonID string
	Category catalog.Category
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route lesson %s: %v: %q", e.LessonID, ErrUnknownCategory, e.Category)
}

func (e *RouteError) Unwrap() error {
	return ErrUnknownCategory
}

// Selection is what the playground receives when a lesson is opened.
type Selection struct {
	Target   Target
	LessonID string
}

// Route picks the playground for a lesson by its category.
func Route(l catalog.Lesson) (Selection, error) {
	var t Target
	switch l.Category {
	case catalog.CategoryMicrobit:
		t = TargetMicrobit
	case catalog.CategoryArduino:
		t = TargetArduino
	default:
		return Selection{}, &RouteError{LessonID: l.ID, Category: l.Category}
	}
	return Selection{Target: t, LessonID: l.ID}, nil
}
