package plan

import (
	"fmt"
	"strings"

	"github.com/gradmap/gradmap/core/course"
)

type (
	// SemesterOverview pairs a semester with its derived credit total.
	SemesterOverview struct {
		Semester
		TotalCredits int `json:"total_credits"`
	}

	Overview struct {
		ID        string             `json:"id"`
		Semesters []SemesterOverview `json:"semesters"`
	}

	// Service exposes the planning operations to the API layer. It owns one
	// Store per process; the plan lives for the process lifetime only.
	Service struct {
		store *Store
		req   Requirements
	}
)

func NewService(store *Store, req Requirements) *Service {
	return &Service{store: store, req: req}
}

func (svc *Service) Store() *Store { return svc.store }

func (svc *Service) Overview() Overview {
	sems := svc.store.Snapshot()
	out := make([]SemesterOverview, len(sems))
	for i, sem := range sems {
		var credits int
		for _, c := range sem.Courses {
			credits += c.Credits
		}
		out[i] = SemesterOverview{Semester: sem, TotalCredits: credits}
	}
	return Overview{ID: svc.store.ID().String(), Semesters: out}
}

func (svc *Service) AddNewSemester(year int, season Season) (Semester, error) {
	return svc.store.AddNewSemester(year, season)
}

func (svc *Service) RemoveSemester(id string) {
	svc.store.RemoveSemester(id)
}

// AddCourse places a catalog course in a semester and reports the resulting
// prerequisite standing. The store may reject it (plan-wide uniqueness).
func (svc *Service) AddCourse(semesterID string, c course.Course) (PrereqCheck, error) {
	if err := svc.store.AddCourse(semesterID, c); err != nil {
		return PrereqCheck{}, err
	}
	return CheckPrerequisites(svc.store, c, semesterID), nil
}

func (svc *Service) RemoveCourse(semesterID, courseID string) {
	svc.store.RemoveCourse(semesterID, courseID)
}

func (svc *Service) MoveCourse(courseID, fromID, toID string) {
	svc.store.MoveCourse(courseID, fromID, toID)
}

func (svc *Service) ClearCourses() {
	svc.store.ClearCourses()
}

func (svc *Service) Progress() Progress {
	return ComputeProgress(svc.store.Snapshot(), svc.req)
}

// CheckCourse reports prerequisite standing for a course already in the plan.
func (svc *Service) CheckCourse(semesterID, courseID string) (PrereqCheck, bool) {
	sem, ok := svc.store.Semester(semesterID)
	if !ok {
		return PrereqCheck{}, false
	}
	for _, c := range sem.Courses {
		if c.ID == courseID {
			return CheckPrerequisites(svc.store, c, semesterID), true
		}
	}
	return PrereqCheck{}, false
}

// ExportText renders the plan as a plain-text summary, used by the export
// endpoint and as the share-email body.
func (svc *Service) ExportText() string {
	sems := svc.store.Snapshot()
	prog := ComputeProgress(sems, svc.req)

	var b strings.Builder
	b.WriteString("Course Plan\n===========\n\n")
	for _, sem := range sems {
		var credits int
		for _, c := range sem.Courses {
			credits += c.Credits
		}
		fmt.Fprintf(&b, "%s (%d credits)\n", sem.Name, credits)
		if len(sem.Courses) == 0 {
			b.WriteString("  (no courses)\n")
		}
		for _, c := range sem.Courses {
			fmt.Fprintf(&b, "  %-12s %s (%d cr)\n", c.Code, c.Title, c.Credits)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %d/%d credits (%d%%), %d hub units, %d courses planned\n",
		prog.TotalCredits, prog.Requirements.TotalCredits, prog.OverallPercent, prog.HubUnits, prog.UniqueCourses)
	if prog.SemestersRemaining > 0 {
		fmt.Fprintf(&b, "Estimated semesters remaining: %d\n", prog.SemestersRemaining)
	}
	return b.String()
}
