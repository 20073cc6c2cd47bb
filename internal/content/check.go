package content

import (
	"fmt"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/plans"
	"github.com/abhisek/stemlab/internal/playground"
)

// IssueKind classifies content drift.
type IssueKind string

const (
	IssueUnknownCategory  IssueKind = "unknown-category"
	IssueOrphanPlan       IssueKind = "orphan-plan"
	IssuePlatformMismatch IssueKind = "platform-mismatch"
	IssueUnknownPart      IssueKind = "unknown-part"
)

// Issue is a content inconsistency that does not prevent startup but
// degrades some lessons.
type Issue struct {
	Kind    IssueKind
	Target  playground.Target
	ID      string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Kind, i.Message)
}

// Check reports drift between the catalog and the platform content: lessons
// that cannot be routed, and plans that point at missing lessons or parts.
func Check(c *Content) []Issue {
	var issues []Issue

	lessons := make(map[string]catalog.Lesson, len(c.Lessons))
	for _, l := range c.Lessons {
		lessons[l.ID] = l
		if _, err := playground.Route(l); err != nil {
			issues = append(issues, Issue{
				Kind:    IssueUnknownCategory,
				ID:      l.ID,
				Message: fmt.Sprintf("lesson %q has category %q with no playground", l.ID, l.Category),
			})
		}
	}

	for _, t := range playground.Targets() {
		p, ok := c.Platforms.Get(t)
		if !ok {
			continue
		}
		for _, id := range p.Plans.IDs() {
			plan, _ := p.Plans.Lookup(id)

			l, ok := lessons[id]
			if !ok {
				issues = append(issues, Issue{
					Kind:    IssueOrphanPlan,
					Target:  t,
					ID:      id,
					Message: fmt.Sprintf("%s plan for lesson %q has no catalog entry", t, id),
				})
			} else if sel, err := playground.Route(l); err == nil && sel.Target != t {
				issues = append(issues, Issue{
					Kind:    IssuePlatformMismatch,
					Target:  t,
					ID:      id,
					Message: fmt.Sprintf("%s plan for lesson %q, but the lesson routes to %s", t, id, sel.Target),
				})
			}

			for _, missing := range plans.MissingParts(plan, p.Library) {
				issues = append(issues, Issue{
					Kind:    IssueUnknownPart,
					Target:  t,
					ID:      id,
					Message: fmt.Sprintf("%s plan for lesson %q requires unknown part %q", t, id, missing),
				})
			}
		}
	}

	return issues
}
