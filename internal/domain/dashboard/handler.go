package dashboard

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dencare/dencare/internal/platform/apperror"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard/revenue", h.GetRevenue)
}

func (h *Handler) GetRevenue(c echo.Context) error {
	year := 0
	if y := c.QueryParam("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 1900 || parsed > 9999 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = parsed
	}

	summary, err := h.svc.Revenue(c.Request().Context(), year)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}
