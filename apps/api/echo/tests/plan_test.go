package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradmap/gradmap/core/plan"
	"github.com/gradmap/gradmap/services/email"
)

func Test_planApi_overview(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/plan")
	app.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var overview plan.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("unmarshalling overview: %v", err)
	}
	assert.NotEmpty(t, overview.ID)
	if assert.Len(t, overview.Semesters, 4) {
		assert.Equal(t, "fall-2026", overview.Semesters[0].ID)
		assert.Equal(t, "spring-2028", overview.Semesters[3].ID)
		assert.Equal(t, 0, overview.Semesters[0].TotalCredits)
	}
}

func Test_planApi_createSemester(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name: "ok", body: []byte(`{"year": 2028, "season": "Fall"}`), wantCode: http.StatusCreated,
			wantData: marchallObj(t, plan.MakeSemester(2028, plan.Fall)),
		},
		{
			name: "season is normalized", body: []byte(`{"year": 2028, "season": "  summer "}`), wantCode: http.StatusCreated,
			wantData: marchallObj(t, plan.MakeSemester(2028, plan.Summer)),
		},
		{
			name: "duplicate (year, season)", body: []byte(`{"year": 2028, "season": "Fall"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"season": "Fall 2028 is already in the plan"}),
		},
		{
			name: "missing year", body: []byte(`{"season": "Fall"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"year": "this field is required"}),
		},
		{
			name: "unknown season", body: []byte(`{"year": 2028, "season": "Winter"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"season": "must be one of Fall, Spring or Summer"}),
		},
		{
			name: "year out of range", body: []byte(`{"year": 9999, "season": "Fall"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"year": "year must be 2,200 or less"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/plan/semesters", tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_planApi_destroySemester(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodDelete, "/v1/plan/semesters/spring-2028")
	app.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, app.planSvc.Overview().Semesters, 3)

	// unknown id is still a 204
	req, rec = newRequest(http.MethodDelete, "/v1/plan/semesters/winter-3000")
	app.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, app.planSvc.Overview().Semesters, 3)
}

func Test_planApi_addCourse(t *testing.T) {
	app := setup(t)
	cs111 := app.catalog.Courses[0]
	cs112 := app.catalog.Courses[1]

	tests := []httpTest{
		{
			name: "prerequisite missing", path: "/v1/plan/semesters/spring-2027/courses",
			body: []byte(`{"code": "CAS CS 112"}`), wantCode: http.StatusCreated,
			wantData: marchallObj(t, map[string]interface{}{
				"course": cs112,
				"prerequisites": map[string]interface{}{
					"course_code": "CAS CS 112", "semester_id": "spring-2027",
					"missing": []string{"CAS CS 111"}, "satisfied": false,
				},
			}),
		},
		{
			name: "prerequisite satisfied by earlier semester", path: "/v1/plan/semesters/fall-2026/courses",
			body: []byte(`{"code": "CAS CS 111"}`), wantCode: http.StatusCreated,
			wantData: marchallObj(t, map[string]interface{}{
				"course": cs111,
				"prerequisites": map[string]interface{}{
					"course_code": "CAS CS 111", "semester_id": "fall-2026",
					"missing": []string{}, "satisfied": true,
				},
			}),
		},
		{
			name: "already planned elsewhere", path: "/v1/plan/semesters/fall-2027/courses",
			body: []byte(`{"code": "CAS CS 112"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"code": "CAS CS 112 is already in the plan"}),
		},
		{
			name: "unknown course code", path: "/v1/plan/semesters/fall-2026/courses",
			body: []byte(`{"code": "CAS XX 999"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"code": `unknown course code "CAS XX 999"`}),
		},
		{
			name: "malformed course code", path: "/v1/plan/semesters/fall-2026/courses",
			body: []byte(`{"code": "CS"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"code": "must be a course code such as 'CAS CS 112'"}),
		},
		{
			name: "missing code", path: "/v1/plan/semesters/fall-2026/courses",
			body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"code": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, tt.path, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// An unknown semester id does not fail, but nothing is stored either.
func Test_planApi_addCourse_unknownSemester(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/plan/semesters/winter-3000/courses", []byte(`{"code": "CAS CS 111"}`))
	app.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	for _, sem := range app.planSvc.Overview().Semesters {
		assert.Empty(t, sem.Courses)
	}
}

func Test_planApi_removeCourse(t *testing.T) {
	app := setup(t)
	cs111 := app.catalog.Courses[0]
	if _, err := app.planSvc.AddCourse("fall-2026", cs111); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	req, rec := newRequest(http.MethodDelete, "/v1/plan/semesters/fall-2026/courses/"+cs111.ID)
	app.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, app.planSvc.Overview().Semesters[0].Courses)

	// absent course is still a 204
	req, rec = newRequest(http.MethodDelete, "/v1/plan/semesters/fall-2026/courses/"+cs111.ID)
	app.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func Test_planApi_moveCourse(t *testing.T) {
	app := setup(t)
	cs111 := app.catalog.Courses[0]
	if _, err := app.planSvc.AddCourse("fall-2026", cs111); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	body := []byte(`{"from": "fall-2026", "to": "spring-2027"}`)
	req, rec := newRequest(http.MethodPost, "/v1/plan/courses/"+cs111.ID+"/move", body)
	app.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	overview := app.planSvc.Overview()
	assert.Empty(t, overview.Semesters[0].Courses)
	if assert.Len(t, overview.Semesters[1].Courses, 1) {
		assert.Equal(t, cs111.ID, overview.Semesters[1].Courses[0].ID)
	}

	// missing fields are rejected
	req, rec = newRequest(http.MethodPost, "/v1/plan/courses/"+cs111.ID+"/move", []byte(`{}`))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, map[string]string{"from": "this field is required", "to": "this field is required"}),
	}, rec)
}

func Test_planApi_prerequisites(t *testing.T) {
	app := setup(t)
	cs112 := app.catalog.Courses[1]
	if _, err := app.planSvc.AddCourse("spring-2027", cs112); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	tests := []httpTest{
		{
			name: "ok", path: "/v1/plan/semesters/spring-2027/courses/" + cs112.ID + "/prerequisites",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{
				"course_code": "CAS CS 112", "semester_id": "spring-2027",
				"missing": []string{"CAS CS 111"}, "satisfied": false,
			}),
		},
		{
			name: "unknown course", path: "/v1/plan/semesters/spring-2027/courses/NOPE/prerequisites",
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name: "unknown semester", path: "/v1/plan/semesters/winter-3000/courses/" + cs112.ID + "/prerequisites",
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"}),
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

func Test_planApi_progress(t *testing.T) {
	app := setup(t)
	for _, i := range []int{0, 1} { // CS 111 + CS 112, 8 credits, 2 hub units
		if _, err := app.planSvc.AddCourse("fall-2026", app.catalog.Courses[i]); err != nil {
			t.Fatalf("AddCourse() error = %v", err)
		}
	}

	req, rec := newRequest(http.MethodGet, "/v1/plan/progress")
	app.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var prog plan.Progress
	if err := json.Unmarshal(rec.Body.Bytes(), &prog); err != nil {
		t.Fatalf("unmarshalling progress: %v", err)
	}
	assert.Equal(t, 8, prog.TotalCredits)
	assert.Equal(t, 2, prog.UniqueCourses)
	assert.Equal(t, 2, prog.HubUnits)
	assert.Equal(t, []string{"QR2"}, prog.HubAreas)
	assert.Equal(t, 6, prog.OverallPercent)
	assert.Equal(t, 120, prog.RemainingCredits)
	assert.Equal(t, plan.DefaultRequirements, prog.Requirements)
}

func Test_planApi_clear(t *testing.T) {
	app := setup(t)
	if _, err := app.planSvc.AddCourse("fall-2026", app.catalog.Courses[0]); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	req, rec := newRequest(http.MethodPost, "/v1/plan/clear")
	app.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	overview := app.planSvc.Overview()
	assert.Len(t, overview.Semesters, 4)
	for _, sem := range overview.Semesters {
		assert.Empty(t, sem.Courses)
	}
}

func Test_planApi_export(t *testing.T) {
	app := setup(t)
	if _, err := app.planSvc.AddCourse("fall-2026", app.catalog.Courses[0]); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	req, rec := newRequest(http.MethodGet, "/v1/plan/export")
	app.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="course-plan.txt"`, rec.Header().Get("Content-Disposition"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "Course Plan"))
	assert.Contains(t, body, "Fall 2026 (4 credits)")
	assert.Contains(t, body, "CAS CS 111")
}

func Test_planApi_share(t *testing.T) {
	emailsvc.ClearSentMessages()
	app := setup(t)
	if _, err := app.planSvc.AddCourse("fall-2026", app.catalog.Courses[0]); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	req, rec := newRequest(http.MethodPost, "/v1/plan/share", []byte(`{"email": "friend@test.cd"}`))
	app.server.ServeHTTP(rec, req)

	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]string{"success": "Your plan has been sent to friend@test.cd."}),
	}, rec)

	app.mailSvc.Wait()
	if assert.Len(t, emailsvc.SentMessages, 1) {
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, "friend@test.cd", msg.To[0].Address)
		assert.Equal(t, "Your course plan", msg.Subject)
		assert.Contains(t, msg.TextContent, "CAS CS 111")
	}

	// invalid email is rejected before anything is sent
	req, rec = newRequest(http.MethodPost, "/v1/plan/share", []byte(`{"email": "nope"}`))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, map[string]string{"email": "email must be a valid email address"}),
	}, rec)
}
