package echoapi

import (
	"fmt"
	"net/http"
	"net/mail"
	"net/url"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
	"github.com/gradmap/gradmap/core/plan"
)

type (
	AddCourseRequest struct {
		Code string `json:"code" validate:"required,coursecode"`
	}

	MoveCourseRequest struct {
		From string `json:"from" validate:"required"`
		To   string `json:"to" validate:"required"`
	}

	SharePlanRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	AddCourseResponse struct {
		Course        course.Course    `json:"course"`
		Prerequisites plan.PrereqCheck `json:"prerequisites"`
	}
)

func (r *AddCourseRequest) Validate(validate *validator.Validate, _ ut.Translator) error {
	r.Code = core.CleanString(r.Code)
	return validate.Struct(r)
}

func (r *MoveCourseRequest) Validate(validate *validator.Validate, _ ut.Translator) error {
	r.From = core.CleanString(r.From)
	r.To = core.CleanString(r.To)
	return validate.Struct(r)
}

func (r *SharePlanRequest) Validate(validate *validator.Validate, _ ut.Translator) error {
	r.Email = core.CleanString(r.Email, true /* lower */)
	return validate.Struct(r)
}

type planApi struct {
	svc        *plan.Service
	catalog    *course.Service
	mailSvc    core.EmailService
	validate   *validator.Validate
	translator ut.Translator
}

func registerPlanAPI(
	g *echo.Group,
	svc *plan.Service,
	catalog *course.Service,
	mailSvc core.EmailService,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := planApi{
		svc:        svc,
		catalog:    catalog,
		mailSvc:    mailSvc,
		validate:   validate,
		translator: translator,
	}

	pg := g.Group("/plan")
	pg.GET("", api.overview)
	pg.GET("/progress", api.progress)
	pg.GET("/export", api.export)
	pg.POST("/share", api.share)
	pg.POST("/clear", api.clear)
	pg.POST("/semesters", api.createSemester)
	pg.DELETE("/semesters/:id", api.destroySemester)
	pg.POST("/semesters/:id/courses", api.addCourse)
	pg.DELETE("/semesters/:id/courses/:courseID", api.removeCourse)
	pg.GET("/semesters/:id/courses/:courseID/prerequisites", api.prerequisites)
	pg.POST("/courses/:courseID/move", api.moveCourse)
}

// Handlers

func (api *planApi) overview(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Overview())
}

func (api *planApi) createSemester(ctx echo.Context) error {
	var data plan.NewSemester
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSemester")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	season, _ := plan.ParseSeason(data.Season) // validated above
	sem, err := api.svc.AddNewSemester(data.Year, season)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sem)
}

func (api *planApi) destroySemester(ctx echo.Context) error {
	api.svc.RemoveSemester(ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}

func (api *planApi) addCourse(ctx echo.Context) error {
	var data AddCourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AddCourseRequest")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	crs, err := api.catalog.GetByCode(ctx.Request().Context(), data.Code)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return core.NewValidationError(err, core.FieldError{Field: "code", Error: fmt.Sprintf("unknown course code %q", data.Code)})
		}
		return upstreamError(err, "course catalog is unavailable")
	}

	check, err := api.svc.AddCourse(ctx.Param("id"), crs)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, AddCourseResponse{Course: crs, Prerequisites: check})
}

func (api *planApi) removeCourse(ctx echo.Context) error {
	api.svc.RemoveCourse(ctx.Param("id"), ctx.Param("courseID"))
	return ctx.NoContent(http.StatusNoContent)
}

func (api *planApi) moveCourse(ctx echo.Context) error {
	var data MoveCourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MoveCourseRequest")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	api.svc.MoveCourse(ctx.Param("courseID"), data.From, data.To)
	return ctx.JSON(http.StatusOK, api.svc.Overview())
}

func (api *planApi) clear(ctx echo.Context) error {
	api.svc.ClearCourses()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *planApi) progress(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Progress())
}

func (api *planApi) prerequisites(ctx echo.Context) error {
	courseID, err := url.PathUnescape(ctx.Param("courseID"))
	if err != nil {
		return errHttpNotFound
	}

	check, ok := api.svc.CheckCourse(ctx.Param("id"), courseID)
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, check)
}

func (api *planApi) export(ctx echo.Context) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="course-plan.txt"`)
	return ctx.String(http.StatusOK, api.svc.ExportText())
}

func (api *planApi) share(ctx echo.Context) error {
	var data SharePlanRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SharePlanRequest")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	api.mailSvc.SendMessages(&core.EmailMessage{
		To:          []mail.Address{{Address: data.Email}},
		Subject:     "Your course plan",
		TextContent: api.svc.ExportText(),
	})
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Your plan has been sent to " + data.Email + "."})
}
