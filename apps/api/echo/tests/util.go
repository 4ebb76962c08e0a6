package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/gradmap/gradmap/apps/api/echo"
	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/advisor"
	"github.com/gradmap/gradmap/core/course"
	"github.com/gradmap/gradmap/core/faculty"
	"github.com/gradmap/gradmap/core/plan"
	"github.com/gradmap/gradmap/services/advisor"
	"github.com/gradmap/gradmap/services/email"
	"github.com/gradmap/gradmap/tests"
)

type testApp struct {
	server     Server
	planSvc    *plan.Service
	catalog    *testutil.CatalogStub
	advisorCli *advisorsvc.DummyClient
	mailSvc    interface{ Wait() }
}

func setup(t *testing.T) *testApp {
	t.Helper()

	conf := &core.Config{
		AppName:          "Gradmap",
		Env:              "TEST",
		TestMode:         true,
		DefaultFromEmail: mail.Address{Name: "Gradmap", Address: "noreply@test.cd"},
	}

	catalog := &testutil.CatalogStub{
		Courses: []course.Course{
			testutil.MakeCourse("CAS CS 111", "Intro to Computer Science 1", 4, []string{"QR2"}),
			testutil.MakeCourse("CAS CS 112", "Intro to Computer Science 2", 4, []string{"QR2"}, "CAS CS 111"),
			testutil.MakeCourse("CAS WR 120", "First-Year Writing Seminar", 4, []string{"FYW"}),
			testutil.MakeCourse("ENG EC 327", "Intro to Software Engineering", 4, nil),
		},
		Schools: []course.School{
			{Code: "CAS", Name: "College of Arts & Sciences"},
			{Code: "ENG", Name: "College of Engineering"},
		},
		Professors: []faculty.Professor{
			{Name: "Jane Doe", Department: "CS", Title: "Professor", OpenAlexID: "A123"},
			{Name: "John Roe", Department: "WR", Title: "Lecturer"},
		},
	}
	research := &testutil.ResearchStub{
		Author: faculty.Author{ID: "A123", DisplayName: "Jane Doe", WorksCount: 42, CitedByCount: 1000},
	}

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	courseSvc := course.NewService(catalog)
	planSvc := plan.NewService(plan.NewStore(2026), plan.DefaultRequirements)
	advisorCli := advisorsvc.NewDummyClient()
	advisorSvc := advisor.NewService(advisorCli, courseSvc, 50*time.Millisecond, testutil.NopLogger{})
	facultySvc := faculty.NewService(catalog, research, testutil.NopLogger{})
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	app := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         testutil.NopLogger{},
		CourseSvc:      courseSvc,
		PlanSvc:        planSvc,
		AdvisorSvc:     advisorSvc,
		FacultySvc:     facultySvc,
		MailSvc:        mailSvc,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})

	return &testApp{
		server:     app,
		planSvc:    planSvc,
		catalog:    catalog,
		advisorCli: advisorCli,
		mailSvc:    mailSvc,
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

// nolint
func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
