package agenda

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rafagnx/clinicos-sub001/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "recepcao", "profissional"))
	g.GET("/agenda", h.Grid)
}

// Grid returns the render geometry for one calendar view.
func (h *Handler) Grid(c echo.Context) error {
	view := ViewMode(c.QueryParam("view"))
	if view == "" {
		view = ViewDay
	}
	if view != ViewDay && view != ViewWeek {
		return echo.NewHTTPError(http.StatusBadRequest, "view must be day or week")
	}

	referenceDate := time.Now()
	if d := c.QueryParam("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		referenceDate = parsed
	}

	var professionalID *uuid.UUID
	if pid := c.QueryParam("professionalId"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid professionalId")
		}
		professionalID = &id
	}

	grid, err := h.svc.Grid(c.Request().Context(), view, referenceDate, professionalID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, grid)
}
