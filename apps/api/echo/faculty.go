package echoapi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core/faculty"
)

type facultyApi struct {
	svc *faculty.Service
}

func registerFacultyAPI(g *echo.Group, svc *faculty.Service) {
	api := facultyApi{svc: svc}

	fg := g.Group("/faculty")
	fg.GET("/professors", api.query)
	fg.GET("/professors/:name", api.profile)
}

func (api *facultyApi) query(ctx echo.Context) error {
	department := ctx.QueryParam("department")
	if strings.EqualFold(department, "all") {
		department = ""
	}

	professors, err := api.svc.Query(ctx.Request().Context(), department)
	if err != nil {
		return upstreamError(err, "faculty directory is unavailable")
	}
	return ctx.JSON(http.StatusOK, professors)
}

func (api *facultyApi) profile(ctx echo.Context) error {
	name, err := url.PathUnescape(ctx.Param("name"))
	if err != nil {
		return errHttpNotFound
	}

	profile, err := api.svc.Profile(ctx.Request().Context(), name)
	if err != nil {
		if errors.Cause(err) == faculty.ErrNotFound {
			return errHttpNotFound
		}
		return upstreamError(err, "faculty directory is unavailable")
	}
	return ctx.JSON(http.StatusOK, profile)
}
