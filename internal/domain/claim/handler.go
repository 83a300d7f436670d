package claim

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dencare/dencare/internal/platform/apperror"
	"github.com/dencare/dencare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/claims", h.ListClaims)
	api.POST("/claims", h.GenerateClaim)
	api.GET("/claims/:id", h.GetClaim)
	api.DELETE("/claims/:id", h.DeleteClaim)
	api.GET("/claims/:id/pdf", h.GetClaimPDF)
}

type generateRequest struct {
	PatientID     uuid.UUID   `json:"patient_id"`
	Lines         []LineInput `json:"lines"`
	AssuranceType string      `json:"assurance_type"`
}

func (h *Handler) GenerateClaim(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	claim, err := h.svc.Generate(c.Request().Context(), req.PatientID, req.Lines, req.AssuranceType)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, claim)
}

func (h *Handler) GetClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	claim, err := h.svc.GetClaim(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, claim)
}

func (h *Handler) ListClaims(c echo.Context) error {
	pg := pagination.FromContext(c)

	if pid := c.QueryParam("patient_id"); pid != "" {
		patientID, err := uuid.Parse(pid)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		claims, total, err := h.svc.ListClaimsByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(claims, total, pg.Limit, pg.Offset))
	}

	claims, total, err := h.svc.ListClaims(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(claims, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteClaim(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetClaimPDF(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	pdf, truncated, err := h.svc.RenderPDF(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	if truncated > 0 {
		c.Response().Header().Set("X-Truncated-Lines", fmt.Sprintf("%d", truncated))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="bulletin-%s.pdf"`, id))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
