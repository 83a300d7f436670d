package catalog

import (
	"net/http"

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
	api.GET("/catalog/chapters", h.ListChapters)
	api.GET("/catalog/acts/:code", h.GetAct)
	api.POST("/catalog/acts", h.AddAct)
	api.PUT("/catalog/acts/:code", h.UpdateAct)
	api.DELETE("/catalog/acts/:code", h.DeleteAct)
}

func (h *Handler) ListChapters(c echo.Context) error {
	chapters, err := h.svc.Catalog(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, chapters)
}

func (h *Handler) GetAct(c echo.Context) error {
	ref, err := h.svc.ResolveAct(c.Request().Context(), c.Param("code"))
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, ref)
}

// actRequest addresses a group and carries the act payload. Group titles may
// be empty (the isolated-acts group), so the address travels in the body
// rather than the path.
type actRequest struct {
	ChapterID  string `json:"chapter_id"`
	SectionID  string `json:"section_id"`
	GroupTitle string `json:"group_title"`
	Act        Act    `json:"act"`
}

func (h *Handler) AddAct(c echo.Context) error {
	var req actRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AddAct(c.Request().Context(), req.ChapterID, req.SectionID, req.GroupTitle, req.Act); err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, req.Act)
}

func (h *Handler) UpdateAct(c echo.Context) error {
	var req actRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Act.Code != "" && req.Act.Code != c.Param("code") {
		return echo.NewHTTPError(http.StatusBadRequest, "act code cannot be changed")
	}
	req.Act.Code = c.Param("code")
	if err := h.svc.UpdateAct(c.Request().Context(), req.ChapterID, req.SectionID, req.GroupTitle, req.Act); err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, req.Act)
}

func (h *Handler) DeleteAct(c echo.Context) error {
	err := h.svc.RemoveAct(c.Request().Context(),
		c.QueryParam("chapter_id"), c.QueryParam("section_id"), c.QueryParam("group_title"),
		c.Param("code"))
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
