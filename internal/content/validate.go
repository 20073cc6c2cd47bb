package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/stemlab/internal/playground"
)

// validate checks cross-record invariants that a schema cannot express.
// All problems are reported in one error.
func validate(ld lessonsDoc, pds []platformDoc) error {
	var errs []string

	lessonIDs := make(map[string]bool, len(ld.Lessons))
	for _, l := range ld.Lessons {
		if lessonIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		lessonIDs[l.ID] = true
		if l.Progress < 0 || l.Progress > 100 {
			errs = append(errs, fmt.Sprintf("lesson %q: progress must be in [0, 100], got %d", l.ID, l.Progress))
		}
	}

	targets := make(map[playground.Target]bool, len(pds))
	for _, pd := range pds {
		t, err := playground.ParseTarget(pd.Target)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if targets[t] {
			errs = append(errs, fmt.Sprintf("duplicate platform: %q", t))
		}
		targets[t] = true

		partIDs := make(map[string]bool, len(pd.Parts))
		for _, p := range pd.Parts {
			if partIDs[p.ID] {
				errs = append(errs, fmt.Sprintf("platform %q: duplicate part ID: %q", t, p.ID))
			}
			partIDs[p.ID] = true
		}

		planIDs := make(map[string]bool, len(pd.Plans))
		for _, p := range pd.Plans {
			if planIDs[p.LessonID] {
				errs = append(errs, fmt.Sprintf("platform %q: duplicate plan for lesson %q", t, p.LessonID))
			}
			planIDs[p.LessonID] = true
		}
	}

	for _, t := range playground.Targets() {
		if !targets[t] {
			errs = append(errs, fmt.Sprintf("platform %q has no content file", t))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
