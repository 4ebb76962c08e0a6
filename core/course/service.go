package course

import (
	"context"
	"errors"

	"github.com/gradmap/gradmap/core"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
)

type (
	// Repository is the catalog collaborator. The production implementation
	// is a thin HTTP client; fetches are one-shot, there are no retries.
	Repository interface {
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByCode(ctx context.Context, code string) (Course, error)
		// SearchCourses applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on Course.Code or Course.Title.
		SearchCourses(ctx context.Context, filter QueryFilter) ([]Course, error)
		QuerySchools(ctx context.Context) ([]School, error)
		// QueryDepartments returns all departments, or only those of `school` when non-empty.
		QueryDepartments(ctx context.Context, school string) ([]Department, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByCode(ctx context.Context, code string) (Course, error) {
	return svc.repo.GetCourseByCode(ctx, core.CleanString(code))
}

func (svc *Service) Search(ctx context.Context, filter QueryFilter) ([]Course, error) {
	filter.Search = core.CleanString(filter.Search)
	filter.School = core.CleanString(filter.School)
	filter.HubArea = core.CleanString(filter.HubArea)
	if filter.IsEmpty() {
		return svc.repo.QueryAllCourses(ctx)
	}
	return svc.repo.SearchCourses(ctx, filter)
}

func (svc *Service) QuerySchools(ctx context.Context) ([]School, error) {
	return svc.repo.QuerySchools(ctx)
}

func (svc *Service) QueryDepartments(ctx context.Context, school string) ([]Department, error) {
	return svc.repo.QueryDepartments(ctx, core.CleanString(school))
}
