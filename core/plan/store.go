package plan

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
)

var (
	// errors
	ErrCourseAlreadyPlanned = errors.New("course is already in the plan")
	ErrSemesterExists       = errors.New("semester is already in the plan")
)

// Store is the sole owner of the mutable planning state. All reads and writes
// go through it. Mutations targeting unknown semester/course ids are silent
// no-ops; the only user-visible rejections are the plan-wide uniqueness rules.
type Store struct {
	mu        sync.RWMutex
	id        uuid.UUID
	semesters []Semester
}

// NewStore seeds the plan with four default semesters starting at Fall of
// startYear, matching a typical two-year planning horizon.
func NewStore(startYear int) *Store {
	return &Store{
		id: uuid.New(),
		semesters: []Semester{
			MakeSemester(startYear, Fall),
			MakeSemester(startYear+1, Spring),
			MakeSemester(startYear+1, Fall),
			MakeSemester(startYear+2, Spring),
		},
	}
}

func (st *Store) ID() uuid.UUID { return st.id }

// Snapshot returns a deep copy of the semesters in display order.
func (st *Store) Snapshot() []Semester {
	st.mu.RLock()
	defer st.mu.RUnlock()

	sems := make([]Semester, len(st.semesters))
	for i, s := range st.semesters {
		sems[i] = s.clone()
	}
	return sems
}

// Semester returns a copy of the semester matching id.
func (st *Store) Semester(id string) (Semester, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if i := st.index(id); i >= 0 {
		return st.semesters[i].clone(), true
	}
	return Semester{}, false
}

// AddSemester appends a fully-formed semester. The caller guarantees id
// uniqueness; AddNewSemester is the checked path.
func (st *Store) AddSemester(sem Semester) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if sem.Courses == nil {
		sem.Courses = []course.Course{}
	}
	st.semesters = append(st.semesters, sem)
}

// AddNewSemester synthesizes a semester from (year, season) and appends it.
// A (year, season) pair already in the plan is rejected so ids stay unique.
func (st *Store) AddNewSemester(year int, season Season) (Semester, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	id := SemesterID(year, season)
	if st.index(id) >= 0 {
		return Semester{}, core.NewValidationError(
			ErrSemesterExists,
			core.FieldError{Field: "season", Error: fmt.Sprintf("%s %d is already in the plan", season, year)},
		)
	}
	sem := MakeSemester(year, season)
	st.semesters = append(st.semesters, sem)
	return sem.clone(), nil
}

// RemoveSemester removes the semester matching id; no-op if absent.
func (st *Store) RemoveSemester(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if i := st.index(id); i >= 0 {
		st.semesters = append(st.semesters[:i], st.semesters[i+1:]...)
	}
}

// AddCourse appends c to the target semester, preserving insertion order.
// A course id already present in ANY semester is rejected; an unknown
// semester id leaves the state unchanged.
func (st *Store) AddCourse(semesterID string, c course.Course) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, sem := range st.semesters {
		for _, existing := range sem.Courses {
			if existing.ID == c.ID {
				return core.NewValidationError(
					ErrCourseAlreadyPlanned,
					core.FieldError{Field: "code", Error: fmt.Sprintf("%s is already in the plan", c.Code)},
				)
			}
		}
	}

	if i := st.index(semesterID); i >= 0 {
		st.semesters[i].Courses = append(st.semesters[i].Courses, c)
	}
	return nil
}

// RemoveCourse removes the course if present in that semester; no-op otherwise.
func (st *Store) RemoveCourse(semesterID, courseID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	i := st.index(semesterID)
	if i < 0 {
		return
	}
	for j, c := range st.semesters[i].Courses {
		if c.ID == courseID {
			st.semesters[i].Courses = append(st.semesters[i].Courses[:j], st.semesters[i].Courses[j+1:]...)
			return
		}
	}
}

// MoveCourse atomically transfers a course between two semesters. It is a
// no-op when the course is not found in fromID, including when fromID itself
// does not exist.
func (st *Store) MoveCourse(courseID, fromID, toID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	from := st.index(fromID)
	if from < 0 {
		return
	}
	for j, c := range st.semesters[from].Courses {
		if c.ID == courseID {
			st.semesters[from].Courses = append(st.semesters[from].Courses[:j], st.semesters[from].Courses[j+1:]...)
			if to := st.index(toID); to >= 0 {
				st.semesters[to].Courses = append(st.semesters[to].Courses, c)
			}
			return
		}
	}
}

// TotalCredits sums credits over the semester's courses; 0 for an unknown id.
func (st *Store) TotalCredits(semesterID string) int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	i := st.index(semesterID)
	if i < 0 {
		return 0
	}
	var total int
	for _, c := range st.semesters[i].Courses {
		total += c.Credits
	}
	return total
}

// CompletedCourses returns the sorted set of course codes planned strictly
// before the boundary semester, compared chronologically by (year, season)
// rather than by list position. Unknown ids yield the empty set.
func (st *Store) CompletedCourses(beforeSemesterID string) []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	b := st.index(beforeSemesterID)
	if b < 0 {
		return []string{}
	}
	boundary := st.semesters[b]

	seen := make(map[string]struct{})
	for _, sem := range st.semesters {
		if !sem.Before(boundary) {
			continue
		}
		for _, c := range sem.Courses {
			seen[c.Code] = struct{}{}
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ClearCourses empties every semester's course sequence, keeping the shells.
func (st *Store) ClearCourses() {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i := range st.semesters {
		st.semesters[i].Courses = []course.Course{}
	}
}

// index must be called with the lock held.
func (st *Store) index(semesterID string) int {
	for i, s := range st.semesters {
		if s.ID == semesterID {
			return i
		}
	}
	return -1
}
