package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
)

const (
	noticeTimeout     = "The advisor took too long to answer; showing generic suggestions instead."
	noticeUnavailable = "The advisor is unavailable right now; showing generic suggestions instead."
)

type (
	// Client is the AI collaborator. Implementations must honor ctx deadlines.
	Client interface {
		Recommend(ctx context.Context, goal string, courses []course.Course) (Result, error)
	}

	Service struct {
		client  Client
		catalog *course.Service
		timeout time.Duration
		logger  core.Logger
	}
)

func NewService(client Client, catalog *course.Service, timeout time.Duration, logger core.Logger) *Service {
	return &Service{client: client, catalog: catalog, timeout: timeout, logger: logger}
}

// Recommend asks the model for course recommendations toward req.Goal,
// with a bounded wait. The call is one-shot: a failure is classified into a
// user-facing notice and the canned fallback is substituted so the caller is
// never left empty-handed.
func (svc *Service) Recommend(ctx context.Context, req RecommendationRequest) (Result, error) {
	courses, err := svc.catalog.QueryAll(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "fetching catalog")
	}
	courses = filterBySchools(courses, req.Schools)

	cctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	res, err := svc.client.Recommend(cctx, req.Goal, courses)
	if err != nil {
		notice := noticeUnavailable
		if errors.Cause(err) == context.DeadlineExceeded || cctx.Err() == context.DeadlineExceeded {
			notice = noticeTimeout
		}
		svc.logger.Error(fmt.Sprintf("advisor: %v", err), err)

		res = Fallback(req.Goal, courses)
		res.Fallback = true
		res.Notice = notice
	}
	return res, nil
}

func filterBySchools(courses []course.Course, schools []string) []course.Course {
	if len(schools) == 0 {
		return courses
	}
	filtered := make([]course.Course, 0, len(courses))
	for _, c := range courses {
		for _, school := range schools {
			if strings.EqualFold(c.School, school) {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered
}
