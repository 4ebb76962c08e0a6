package advisorsvc

import (
	"context"

	"github.com/gradmap/gradmap/core/advisor"
	"github.com/gradmap/gradmap/core/course"
)

// DummyClient answers with the canned fallback, for local runs without an API
// key and for tests. Err, when set, is returned instead.
type DummyClient struct {
	Err error
}

var _ advisor.Client = (*DummyClient)(nil)

func NewDummyClient() *DummyClient { return &DummyClient{} }

func (dc *DummyClient) Recommend(_ context.Context, goal string, courses []course.Course) (advisor.Result, error) {
	if dc.Err != nil {
		return advisor.Result{}, dc.Err
	}
	return advisor.Fallback(goal, courses), nil
}
