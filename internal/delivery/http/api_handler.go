package http

import (
	"github.com/labstack/echo/v4"

	"tradeacademy/internal/delivery/http/dto"
	"tradeacademy/internal/middleware"
	"tradeacademy/internal/service"
)

// APIHandler serves the read-only JSON API
type APIHandler struct {
	profileSvc  *service.ProfileService
	seasonalSvc *service.SeasonalService
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(profileSvc *service.ProfileService, seasonalSvc *service.SeasonalService) *APIHandler {
	return &APIHandler{
		profileSvc:  profileSvc,
		seasonalSvc: seasonalSvc,
	}
}

// GetUser returns the committed trader profile
// GET /api/user
func (h *APIHandler) GetUser(c echo.Context) error {
	user, err := h.profileSvc.Current(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}
	return SuccessResponse(c, dto.ToUserOutput(user))
}

// GetAchievements returns every unlocked achievement
// GET /api/achievements
func (h *APIHandler) GetAchievements(c echo.Context) error {
	user, err := h.profileSvc.Current(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}
	return SuccessResponse(c, dto.ToAchievementOutputs(user.Achievements))
}

// GetSeasonal returns the twelve month tendencies with derived values
// GET /api/seasonal
func (h *APIHandler) GetSeasonal(c echo.Context) error {
	details, err := h.seasonalSvc.Details(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}
	return SuccessResponse(c, dto.ToSeasonalOutputs(details))
}

// GetSeasonalMonth returns one month's tendency
// GET /api/seasonal/:month
func (h *APIHandler) GetSeasonalMonth(c echo.Context) error {
	detail, err := h.seasonalSvc.Detail(c.Request().Context(), c.Param("month"))
	if err != nil {
		return DomainErrorResponse(c, err)
	}
	return SuccessResponse(c, dto.ToSeasonalOutput(detail))
}

// GetSession returns the caller's dashboard session state
// GET /api/session
func (h *APIHandler) GetSession(c echo.Context) error {
	shell, err := middleware.GetShell(c)
	if err != nil {
		return InternalServerErrorResponse(c, "Session unavailable", err)
	}

	view, err := shell.Snapshot(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	out := dto.SessionOutput{
		SessionID: view.SessionID.String(),
		ActiveTab: string(view.ActiveTab),
		Editing:   view.Editing,
	}
	if view.Editing {
		working := dto.ToUserOutput(&view.Working)
		out.Working = &working
	}
	if view.HasSelection {
		month := view.SelectedMonth
		out.SelectedMonth = &month
	}

	return SuccessResponse(c, out)
}
