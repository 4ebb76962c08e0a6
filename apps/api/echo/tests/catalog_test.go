package tests

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core/course"
)

func Test_catalogApi(t *testing.T) {
	app := setup(t)
	cs111 := app.catalog.Courses[0]
	cs112 := app.catalog.Courses[1]
	wr120 := app.catalog.Courses[2]
	ec327 := app.catalog.Courses[3]

	tests := []httpTest{
		{
			name: "all courses", path: "/v1/catalog/courses", wantCode: http.StatusOK,
			wantData: marchallList(t, cs111, cs112, wr120, ec327),
		},
		{
			name: "search by keyword", path: "/v1/catalog/courses/search?q=writing", wantCode: http.StatusOK,
			wantData: marchallList(t, wr120),
		},
		{
			name: "search by school", path: "/v1/catalog/courses/search?school=ENG", wantCode: http.StatusOK,
			wantData: marchallList(t, ec327),
		},
		{
			name: "search by hub area", path: "/v1/catalog/courses/search?hub_area=QR2", wantCode: http.StatusOK,
			wantData: marchallList(t, cs111, cs112),
		},
		{
			name: "empty search returns everything", path: "/v1/catalog/courses/search", wantCode: http.StatusOK,
			wantData: marchallList(t, cs111, cs112, wr120, ec327),
		},
		{
			name: "search without match", path: "/v1/catalog/courses/search?q=zzz", wantCode: http.StatusOK,
			wantData: marchallList(t),
		},
		{
			name: "course by code", path: "/v1/catalog/courses/CAS%20CS%20112", wantCode: http.StatusOK,
			wantData: marchallObj(t, cs112),
		},
		{
			name: "course by code (not found)", path: "/v1/catalog/courses/CAS%20XX%20999", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name: "schools", path: "/v1/catalog/schools", wantCode: http.StatusOK,
			wantData: marchallList(t, app.catalog.Schools[0], app.catalog.Schools[1]),
		},
		{
			name: "all departments", path: "/v1/catalog/departments", wantCode: http.StatusOK,
			wantData: marchallList(t, course.Department{Code: "CS", Name: "CS"}, course.Department{Code: "WR", Name: "WR"}, course.Department{Code: "EC", Name: "EC"}),
		},
		{
			name: "departments by school", path: "/v1/catalog/departments/ENG", wantCode: http.StatusOK,
			wantData: marchallList(t, course.Department{Code: "EC", Name: "EC"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// Catalog outages surface as 502s, never 500s.
func Test_catalogApi_upstreamDown(t *testing.T) {
	app := setup(t)
	app.catalog.Err = errors.New("connection refused")

	tests := []httpTest{
		{name: "all courses", path: "/v1/catalog/courses"},
		{name: "search", path: "/v1/catalog/courses/search?q=writing"},
		{name: "course by code", path: "/v1/catalog/courses/CAS%20CS%20112"},
		{name: "schools", path: "/v1/catalog/schools"},
		{name: "departments", path: "/v1/catalog/departments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.wantCode = http.StatusBadGateway
			tt.wantData = marchallObj(t, httpErr{Error: "course catalog is unavailable"})

			req, rec := newRequest(http.MethodGet, tt.path)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
