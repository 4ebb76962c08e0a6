package testutil

import (
	"context"
	"strings"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
	"github.com/gradmap/gradmap/core/faculty"
)

// NopLogger discards everything.
type NopLogger struct{}

var _ core.Logger = (*NopLogger)(nil)

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}

// MakeCourse builds a catalog course fixture. The id is the code with spaces
// replaced, matching what the catalog collaborator produces.
func MakeCourse(code, title string, credits int, hubs []string, required ...string) course.Course {
	school, subject, number := course.CodeParts(code)
	if required == nil {
		required = []string{}
	}
	if hubs == nil {
		hubs = []string{}
	}
	return course.Course{
		ID:            strings.ReplaceAll(code, " ", "_"),
		Code:          code,
		School:        school,
		Subject:       subject,
		CatalogNumber: number,
		Title:         title,
		Credits:       credits,
		Level:         course.LevelIntroductory,
		Prerequisites: course.Prerequisites{
			Required:    required,
			Recommended: []string{},
		},
		HubRequirements: hubs,
	}
}

// CatalogStub serves fixtures in place of the external catalog API.
// Err, when set, is returned by every call.
type CatalogStub struct {
	Courses    []course.Course
	Schools    []course.School
	Professors []faculty.Professor
	Err        error
}

var (
	_ course.Repository = (*CatalogStub)(nil)
	_ faculty.Directory = (*CatalogStub)(nil)
)

func (s *CatalogStub) QueryAllCourses(context.Context) ([]course.Course, error) {
	return s.Courses, s.Err
}

func (s *CatalogStub) GetCourseByCode(_ context.Context, code string) (course.Course, error) {
	if s.Err != nil {
		return course.Course{}, s.Err
	}
	for _, c := range s.Courses {
		if c.Code == code {
			return c, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (s *CatalogStub) SearchCourses(_ context.Context, filter course.QueryFilter) ([]course.Course, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	matched := make([]course.Course, 0, len(s.Courses))
	for _, c := range s.Courses {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(c.Code), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.School != "" && !strings.EqualFold(c.School, filter.School) {
			continue
		}
		if filter.HubArea != "" && !containsFold(c.HubRequirements, filter.HubArea) {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func (s *CatalogStub) QuerySchools(context.Context) ([]course.School, error) {
	return s.Schools, s.Err
}

func (s *CatalogStub) QueryDepartments(_ context.Context, school string) ([]course.Department, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	seen := make(map[string]struct{})
	departments := make([]course.Department, 0)
	for _, c := range s.Courses {
		if school != "" && !strings.EqualFold(c.School, school) {
			continue
		}
		if _, ok := seen[c.Subject]; ok {
			continue
		}
		seen[c.Subject] = struct{}{}
		departments = append(departments, course.Department{Code: c.Subject, Name: c.Subject})
	}
	return departments, nil
}

func (s *CatalogStub) QueryProfessors(_ context.Context, department string) ([]faculty.Professor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if department == "" {
		return s.Professors, nil
	}
	matched := make([]faculty.Professor, 0, len(s.Professors))
	for _, p := range s.Professors {
		if strings.EqualFold(p.Department, department) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *CatalogStub) GetProfessorByName(_ context.Context, name string) (faculty.Professor, error) {
	if s.Err != nil {
		return faculty.Professor{}, s.Err
	}
	for _, p := range s.Professors {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return faculty.Professor{}, faculty.ErrNotFound
}

// ResearchStub serves canned OpenAlex data.
type ResearchStub struct {
	Author faculty.Author
	Works  []faculty.Work
	Err    error
}

var _ faculty.Research = (*ResearchStub)(nil)

func (s *ResearchStub) GetAuthor(context.Context, string) (faculty.Author, error) {
	return s.Author, s.Err
}

func (s *ResearchStub) GetAuthorWorks(_ context.Context, _ string, limit int) ([]faculty.Work, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Works) > limit {
		return s.Works[:limit], nil
	}
	return s.Works, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
