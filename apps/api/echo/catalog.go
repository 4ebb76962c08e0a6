package echoapi

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core/course"
)

type catalogApi struct {
	svc *course.Service
}

func registerCatalogAPI(g *echo.Group, svc *course.Service) {
	api := catalogApi{svc: svc}

	cg := g.Group("/catalog")
	cg.GET("/courses", api.query)
	cg.GET("/courses/search", api.search)
	cg.GET("/courses/:code", api.retrieve)
	cg.GET("/schools", api.querySchools)
	cg.GET("/departments", api.queryDepartments)
	cg.GET("/departments/:school", api.queryDepartments)
}

// Handlers

func (api *catalogApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return upstreamError(err, "course catalog is unavailable")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *catalogApi) search(ctx echo.Context) error {
	var filter course.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	courses, err := api.svc.Search(ctx.Request().Context(), filter)
	if err != nil {
		return upstreamError(err, "course catalog is unavailable")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *catalogApi) retrieve(ctx echo.Context) error {
	code, err := url.PathUnescape(ctx.Param("code"))
	if err != nil {
		return errHttpNotFound
	}

	crs, err := api.svc.GetByCode(ctx.Request().Context(), code)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return upstreamError(err, "course catalog is unavailable")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *catalogApi) querySchools(ctx echo.Context) error {
	schools, err := api.svc.QuerySchools(ctx.Request().Context())
	if err != nil {
		return upstreamError(err, "course catalog is unavailable")
	}
	return ctx.JSON(http.StatusOK, schools)
}

func (api *catalogApi) queryDepartments(ctx echo.Context) error {
	school, err := url.PathUnescape(ctx.Param("school"))
	if err != nil {
		return errHttpNotFound
	}

	departments, err := api.svc.QueryDepartments(ctx.Request().Context(), school)
	if err != nil {
		return upstreamError(err, "course catalog is unavailable")
	}
	return ctx.JSON(http.StatusOK, departments)
}
