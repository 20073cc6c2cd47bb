package plans

// Stepper tracks the active step of a tutorial. The index is clamped to
// [0, n-1]; a stepper over zero steps never moves.
type Stepper struct {
	current int
	count   int
}

// NewStepper creates a stepper over n steps, positioned at the first.
func NewStepper(n int) *Stepper {
	return &Stepper{count: max(n, 0)}
}

// Current returns the zero-based active step.
func (s *Stepper) Current() int { return s.current }

// Count returns the number of steps.
func (s *Stepper) Count() int { return s.count }

// Next advances one step and reports whether the index changed.
func (s *Stepper) Next() bool {
	if s.current+1 >= s.count {
		return false
	}
	s.current++
	return true
}

// Back moves one step back and reports whether the index changed.
func (s *Stepper) Back() bool {
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// IsFirst reports whether the first step is active.
func (s *Stepper) IsFirst() bool { return s.current == 0 }

// IsLast reports whether the last step is active. It is true for an empty
// stepper.
func (s *Stepper) IsLast() bool { return s.current >= s.count-1 }

// Reset returns to the first step.
func (s *Stepper) Reset() { s.current = 0 }
