package catalogsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
	"github.com/gradmap/gradmap/core/faculty"
)

// Client is a thin wrapper around the external catalog REST API. Calls are
// one-shot request/response: no retry, no backoff; failures are wrapped and
// left for the call site to surface.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ course.Repository = (*Client)(nil)
	_ faculty.Directory = (*Client)(nil)
)

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.Catalog.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.Catalog.Timeout},
	}
}

type (
	coursesResponse struct {
		Courses []course.Course `json:"courses"`
		Total   int             `json:"total"`
	}

	schoolsResponse struct {
		Schools []course.School `json:"schools"`
	}

	departmentsResponse struct {
		Departments []course.Department `json:"departments"`
	}

	professorsResponse struct {
		Professors []faculty.Professor `json:"professors"`
		Total      int                 `json:"total"`
	}
)

func (c *Client) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var res coursesResponse
	if err := c.get(ctx, "/api/courses/", nil, &res); err != nil {
		return nil, err
	}
	return res.Courses, nil
}

func (c *Client) GetCourseByCode(ctx context.Context, code string) (course.Course, error) {
	var crs course.Course
	err := c.get(ctx, "/api/courses/"+url.PathEscape(code), nil, &crs)
	if err == errNotFound {
		return course.Course{}, course.ErrNotFound
	}
	return crs, err
}

func (c *Client) SearchCourses(ctx context.Context, filter course.QueryFilter) ([]course.Course, error) {
	params := make(url.Values)
	if filter.Search != "" {
		params.Set("q", filter.Search)
	}
	if filter.School != "" {
		params.Set("school", filter.School)
	}
	if filter.HubArea != "" {
		params.Set("hub_area", filter.HubArea)
	}

	var res coursesResponse
	if err := c.get(ctx, "/api/courses/search/", params, &res); err != nil {
		return nil, err
	}
	return res.Courses, nil
}

func (c *Client) QuerySchools(ctx context.Context) ([]course.School, error) {
	var res schoolsResponse
	if err := c.get(ctx, "/api/schools/", nil, &res); err != nil {
		return nil, err
	}
	return res.Schools, nil
}

func (c *Client) QueryDepartments(ctx context.Context, school string) ([]course.Department, error) {
	path := "/api/departments/"
	if school != "" {
		path += url.PathEscape(school)
	}

	var res departmentsResponse
	if err := c.get(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Departments, nil
}

func (c *Client) QueryProfessors(ctx context.Context, department string) ([]faculty.Professor, error) {
	params := make(url.Values)
	if department != "" {
		params.Set("department", department)
	}

	var res professorsResponse
	if err := c.get(ctx, "/api/professors/", params, &res); err != nil {
		return nil, err
	}
	return res.Professors, nil
}

func (c *Client) GetProfessorByName(ctx context.Context, name string) (faculty.Professor, error) {
	var res struct {
		Professor faculty.Professor `json:"professor"`
	}
	err := c.get(ctx, "/api/professors/"+url.PathEscape(name), nil, &res)
	if err == errNotFound {
		return faculty.Professor{}, faculty.ErrNotFound
	}
	return res.Professor, err
}

var errNotFound = errors.New("catalog: not found")

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrapf(err, "catalog: building request %s", path)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "catalog: GET %s", path)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return errNotFound
	case res.StatusCode >= http.StatusBadRequest:
		return errors.Errorf("catalog: GET %s returned %d", path, res.StatusCode)
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "catalog: decoding %s", path)
	}
	return nil
}
