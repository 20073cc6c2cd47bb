package playground

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/stemlab/internal/parts"
	"github.com/abhisek/stemlab/internal/plans"
)

// Mode is the kind of playground session.
type Mode int

const (
	// ModeFreeBuild sorts parts with no tutorial.
	ModeFreeBuild Mode = iota
	// ModeLesson shows a lesson plan with steps and required parts.
	ModeLesson
)

func (m Mode) String() string {
	if m == ModeLesson {
		return "lesson"
	}
	return "free-build"
}

// Session is one opened playground. Reopening a playground creates a new
// Session, so categorization state never carries over.
type Session struct {
	ID       string
	Platform *Platform
	LessonID string
	Mode     Mode
	Plan     plans.Plan

	store    *parts.Store
	stepper  *plans.Stepper
	required []plans.Requirement
	logger   *slog.Logger
}

// Open starts a session on platform for lessonID. An empty lessonID or a
// lesson without a plan opens in free-build mode.
func Open(platform *Platform, lessonID string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var lib *parts.Library
	if platform != nil {
		lib = platform.Library
	}

	s := &Session{
		ID:       uuid.NewString(),
		Platform: platform,
		LessonID: lessonID,
		Mode:     ModeFreeBuild,
		store:    parts.NewStore(lib),
		stepper:  plans.NewStepper(0),
	}
	s.logger = logger.With("session", s.ID, "target", string(s.target()))

	if lessonID != "" && platform != nil {
		if plan, ok := platform.Plans.Lookup(lessonID); ok {
			s.Mode = ModeLesson
			s.Plan = plan
			s.stepper = plans.NewStepper(len(plan.Steps))
			s.required = plans.RequiredParts(plan, lib)
		}
	}

	s.store.OnChange(func(c parts.Change) {
		s.logger.Debug("categorization changed",
			"kind", c.Kind.String(),
			"part", c.PartID,
			"from", string(c.From),
			"to", string(c.To),
		)
	})

	s.logger.Info("playground opened", "lesson", lessonID, "mode", s.Mode.String())
	return s
}

func (s *Session) target() Target {
	if s.Platform == nil {
		return ""
	}
	return s.Platform.Target
}

// Store returns the session's categorization store.
func (s *Session) Store() *parts.Store { return s.store }

// Stepper returns the tutorial stepper. In free-build mode it has no steps.
func (s *Session) Stepper() *plans.Stepper { return s.stepper }

// Required returns the plan's required parts with quantities.
func (s *Session) Required() []plans.Requirement { return s.required }

// Library returns the platform's part library.
func (s *Session) Library() *parts.Library { return s.store.Library() }

// Assign moves a part into a bucket. See parts.Store.Assign.
func (s *Session) Assign(partID string, b parts.Bucket) { s.store.Assign(partID, b) }

// Unassign removes a part from a bucket. See parts.Store.Unassign.
func (s *Session) Unassign(b parts.Bucket, partID string) { s.store.Unassign(b, partID) }

// Contents returns the parts in a bucket.
func (s *Session) Contents(b parts.Bucket) []parts.Part { return s.store.Contents(b) }

// CurrentStep returns the active step, if the session has any.
func (s *Session) CurrentStep() (plans.Step, bool) {
	if s.stepper.Count() == 0 {
		return plans.Step{}, false
	}
	return s.Plan.Steps[s.stepper.Current()], true
}

// Next advances the tutorial.
func (s *Session) Next() bool {
	moved := s.stepper.Next()
	if moved {
		s.logger.Debug("step advanced", "step", s.stepper.Current())
	}
	return moved
}

// Back moves the tutorial back one step.
func (s *Session) Back() bool {
	moved := s.stepper.Back()
	if moved {
		s.logger.Debug("step back", "step", s.stepper.Current())
	}
	return moved
}

// Reset empties every bucket.
func (s *Session) Reset() {
	s.store.Reset()
}

// Close records the end of the session. The session must not be used
// afterwards.
func (s *Session) Close() {
	s.logger.Info("playground closed",
		"mode", s.Mode.String(),
		"sorted", s.store.Assigned(),
		"step", s.stepper.Current(),
	)
}
