package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core/advisor"
)

type advisorApi struct {
	svc        *advisor.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerAdvisorAPI(g *echo.Group, svc *advisor.Service, validate *validator.Validate, translator ut.Translator) {
	api := advisorApi{svc: svc, validate: validate, translator: translator}

	ag := g.Group("/advisor")
	ag.POST("/recommendations", api.recommend)
}

func (api *advisorApi) recommend(ctx echo.Context) error {
	var data advisor.RecommendationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RecommendationRequest")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	res, err := api.svc.Recommend(ctx.Request().Context(), data)
	if err != nil {
		// only the catalog fetch can fail here; model failures fall back
		return upstreamError(err, "course catalog is unavailable")
	}
	return ctx.JSON(http.StatusOK, res)
}
