package plan

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
)

type Season string

const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
)

var Seasons = []Season{Spring, Summer, Fall}

// Ordinal places seasons within one calendar year: Spring < Summer < Fall.
func (s Season) Ordinal() int {
	switch s {
	case Spring:
		return 0
	case Summer:
		return 1
	case Fall:
		return 2
	}
	return -1
}

func (s Season) Valid() bool { return s.Ordinal() >= 0 }

// ParseSeason normalizes user input ("fall", "FALL") to a Season.
func ParseSeason(s string) (Season, bool) {
	for _, known := range Seasons {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// SemesterID derives the canonical id, e.g. "fall-2026".
func SemesterID(year int, season Season) string {
	return fmt.Sprintf("%s-%d", strings.ToLower(string(season)), year)
}

// Semester is an ordered slot of the plan. Display order is insertion order;
// chronology is derived from (Year, Season), not from position.
type Semester struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Year    int             `json:"year"`
	Season  Season          `json:"season"`
	Courses []course.Course `json:"courses"`
}

func MakeSemester(year int, season Season) Semester {
	return Semester{
		ID:      SemesterID(year, season),
		Name:    fmt.Sprintf("%s %d", season, year),
		Year:    year,
		Season:  season,
		Courses: []course.Course{},
	}
}

// chronoKey is comparable across years.
func (s Semester) chronoKey() int {
	return s.Year*len(Seasons) + s.Season.Ordinal()
}

// Before reports whether s is strictly chronologically earlier than other.
func (s Semester) Before(other Semester) bool {
	return s.chronoKey() < other.chronoKey()
}

func (s Semester) clone() Semester {
	cp := s
	cp.Courses = make([]course.Course, len(s.Courses))
	copy(cp.Courses, s.Courses)
	return cp
}

// NewSemester contains information needed to append a semester to the plan.
type NewSemester struct {
	Year   int    `json:"year" validate:"required,min=1900,max=2200"`
	Season string `json:"season" validate:"required,season"`
}

func (ns *NewSemester) Validate(validate *validator.Validate, _ ut.Translator) error {
	ns.Season = core.CleanString(ns.Season)
	return validate.Struct(ns)
}
