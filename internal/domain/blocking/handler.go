package blocking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rafagnx/clinicos-sub001/internal/platform/auth"
)

// toHTTPError distinguishes correctable input from server-side failure: a
// ValidationError is the caller's problem, anything else is a 500.
func toHTTPError(err error) *echo.HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

type Handler struct {
	svc      *Service
	resolver *Resolver
}

func NewHandler(svc *Service, resolver *Resolver) *Handler {
	return &Handler{svc: svc, resolver: resolver}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "recepcao", "profissional"))
	g.GET("/blocked-days", h.ListBlockedDays)
	g.POST("/blocked-days", h.CreateBlockedDays)
	g.PATCH("/blocked-days/:id", h.UpdateBlockedDay)
	g.DELETE("/blocked-days/:id", h.DeleteBlockedDay)

	g.GET("/holidays", h.ListHolidays)
	g.POST("/holidays", h.CreateHoliday, auth.RequireRole("admin"))
	g.DELETE("/holidays/:id", h.DeleteHoliday, auth.RequireRole("admin"))
	g.POST("/holidays/seed", h.SeedHolidays, auth.RequireRole("admin"))
}

func (h *Handler) ListBlockedDays(c echo.Context) error {
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")
	if startDate == "" || endDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required")
	}

	var professionalID *uuid.UUID
	if pid := c.QueryParam("professionalId"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid professionalId")
		}
		professionalID = &id
	}

	items, err := h.svc.ListBlockedPeriods(c.Request().Context(), professionalID, startDate, endDate)
	if err != nil {
		return toHTTPError(err)
	}
	if items == nil {
		items = []*BlockedPeriod{}
	}
	return c.JSON(http.StatusOK, items)
}

// CreateBlockedDays runs the create-or-confirm protocol. A conflict outcome
// is a 200 response whose body carries a "conflicts" key; it is the key's
// presence, not the status code, that distinguishes it from success.
func (h *Handler) CreateBlockedDays(c echo.Context) error {
	var req BlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome, err := h.resolver.CreateBlock(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}

	if outcome.HasConflicts() {
		return c.JSON(http.StatusOK, outcome)
	}
	if req.ProfessionalSelector != AllProfessionals && len(outcome.Created) == 1 {
		return c.JSON(http.StatusCreated, outcome.Created[0])
	}
	return c.JSON(http.StatusCreated, outcome)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) UpdateBlockedDay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bp, err := h.svc.UpdateReason(c.Request().Context(), id, req.Reason)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, bp)
}

func (h *Handler) DeleteBlockedDay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteBlockedPeriod(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// -- Holidays --

func (h *Handler) ListHolidays(c echo.Context) error {
	year := time.Now().Year()
	if y := c.QueryParam("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = parsed
	}
	items, err := h.svc.ListHolidays(c.Request().Context(), year)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Holiday{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateHoliday(c echo.Context) error {
	var hol Holiday
	if err := c.Bind(&hol); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateHoliday(c.Request().Context(), &hol); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, hol)
}

func (h *Handler) DeleteHoliday(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteHoliday(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

type seedRequest struct {
	Year int `json:"year"`
}

func (h *Handler) SeedHolidays(c echo.Context) error {
	req := seedRequest{Year: time.Now().Year()}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	count, err := h.svc.SeedHolidays(c.Request().Context(), req.Year)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}
