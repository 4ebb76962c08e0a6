package plan

import (
	"sort"

	"github.com/gradmap/gradmap/core/course"
)

// PrereqCheck reports which of a course's required prerequisites are not
// planned in a strictly earlier semester.
type PrereqCheck struct {
	CourseCode string   `json:"course_code"`
	SemesterID string   `json:"semester_id"`
	Missing    []string `json:"missing"`
	Satisfied  bool     `json:"satisfied"`
}

// CheckPrerequisites compares c's required prerequisites against the courses
// completed before the semester it is placed in. The course's own semester is
// the boundary: co-enrollment never satisfies a prerequisite. The full missing
// set is returned, sorted for deterministic output.
func CheckPrerequisites(st *Store, c course.Course, semesterID string) PrereqCheck {
	completed := make(map[string]struct{})
	for _, code := range st.CompletedCourses(semesterID) {
		completed[code] = struct{}{}
	}

	missing := make([]string, 0, len(c.Prerequisites.Required))
	for _, code := range c.Prerequisites.Required {
		if _, ok := completed[code]; !ok {
			missing = append(missing, code)
		}
	}
	sort.Strings(missing)

	return PrereqCheck{
		CourseCode: c.Code,
		SemesterID: semesterID,
		Missing:    missing,
		Satisfied:  len(missing) == 0,
	}
}
