package http

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/middleware"
	"tradeacademy/internal/service"
	"tradeacademy/internal/usecase"
)

type navItem struct {
	domain.Tab
	Active bool
}

type option struct {
	Value    string
	Selected bool
}

// pageData is the template input of every page
type pageData struct {
	Title             string
	Nav               []navItem
	View              usecase.View
	Summary           service.ProfileSummary
	Tiles             []service.MonthTile
	Detail            *service.MonthDetail
	ExperienceOptions []option
	RiskOptions       []option
	Error             string
}

var pageTitles = map[domain.TabID]string{
	domain.TabDashboard:    "Dashboard",
	domain.TabProfile:      "Profile",
	domain.TabSeasonal:     "Seasonal Tendencies",
	domain.TabAnalysis:     "ICT Analysis",
	domain.TabAchievements: "Achievements",
	domain.TabSettings:     "Settings",
}

type WebHandler struct {
	templates   *template.Template
	seasonalSvc *service.SeasonalService
	logger      *zap.Logger
}

func NewWebHandler(
	templates *template.Template,
	seasonalSvc *service.SeasonalService,
	logger *zap.Logger,
) *WebHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebHandler{
		templates:   templates,
		seasonalSvc: seasonalSvc,
		logger:      logger,
	}
}

// GET / - Redirect to the dashboard
func (h *WebHandler) HandleIndex(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/dashboard")
}

// GET /:tab - Switch the active tab and render it.
// Unknown tabs render the dashboard.
func (h *WebHandler) HandleTab(c echo.Context) error {
	shell, err := middleware.GetShell(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := shell.Dispatch(ctx, usecase.SelectTab{Tab: c.Param("tab")}); err != nil {
		return err
	}

	return h.renderPage(c, shell, http.StatusOK, "")
}

// POST /profile/edit - Edit Profile / Cancel toggle
func (h *WebHandler) HandleToggleEdit(c echo.Context) error {
	return h.dispatchAndRedirect(c, usecase.ToggleEdit{}, "/profile")
}

// POST /profile/draft - Stage submitted fields, returns a status fragment for HTMX
func (h *WebHandler) HandleDraft(c echo.Context) error {
	shell, err := middleware.GetShell(c)
	if err != nil {
		return err
	}

	fields, err := profileFields(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	for _, field := range fields {
		cmd := usecase.StageProfileField{Field: field.name, Value: field.value}
		if err := shell.Dispatch(ctx, cmd); err != nil {
			return h.render(c, StatusFor(err), "draft_status", pageData{Error: err.Error()})
		}
	}

	return h.render(c, http.StatusOK, "draft_status", pageData{})
}

// POST /profile/save - Commit the edited profile
func (h *WebHandler) HandleSave(c echo.Context) error {
	shell, err := middleware.GetShell(c)
	if err != nil {
		return err
	}

	fields, err := profileFields(c)
	if err != nil {
		return err
	}

	cmd := usecase.SaveProfile{Fields: make(map[string]string, len(fields))}
	for _, field := range fields {
		cmd.Fields[field.name] = field.value
	}

	ctx := c.Request().Context()
	if err := shell.Dispatch(ctx, cmd); err != nil {
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			return err
		}
		return h.renderPage(c, shell, status, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, "/profile")
}

// POST /profile/cancel - Discard staged edits
func (h *WebHandler) HandleCancel(c echo.Context) error {
	return h.dispatchAndRedirect(c, usecase.CancelEdit{}, "/profile")
}

// POST /seasonal/months/:month - Select a month, or deselect it when already selected
func (h *WebHandler) HandleToggleMonth(c echo.Context) error {
	return h.dispatchAndRedirect(c, usecase.ToggleMonth{Month: c.Param("month")}, "/seasonal")
}

// POST /seasonal/clear - Close the month detail panel
func (h *WebHandler) HandleClearMonth(c echo.Context) error {
	return h.dispatchAndRedirect(c, usecase.ClearMonth{}, "/seasonal")
}

func (h *WebHandler) dispatchAndRedirect(c echo.Context, cmd usecase.Command, location string) error {
	shell, err := middleware.GetShell(c)
	if err != nil {
		return err
	}

	if err := shell.Dispatch(c.Request().Context(), cmd); err != nil {
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			return err
		}
		return echo.NewHTTPError(status, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, location)
}

type formField struct {
	name  string
	value string
}

var editableFields = []string{
	usecase.FieldName,
	usecase.FieldTradingExperience,
	usecase.FieldPreferredTimeframe,
	usecase.FieldRiskTolerance,
}

// profileFields returns the editable fields present in the submitted form
func profileFields(c echo.Context) ([]formField, error) {
	form, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid form")
	}

	var fields []formField
	for _, name := range editableFields {
		values, ok := form[name]
		if !ok || len(values) == 0 {
			continue
		}
		fields = append(fields, formField{name: name, value: values[0]})
	}
	return fields, nil
}

func (h *WebHandler) renderPage(c echo.Context, shell *usecase.Shell, status int, errMsg string) error {
	ctx := c.Request().Context()
	view, err := shell.Snapshot(ctx)
	if err != nil {
		return err
	}

	data, err := h.buildPage(ctx, view)
	if err != nil {
		return err
	}
	data.Error = errMsg

	return h.render(c, status, string(view.ActiveTab), data)
}

func (h *WebHandler) buildPage(ctx context.Context, view usecase.View) (pageData, error) {
	data := pageData{
		Title:   pageTitles[view.ActiveTab],
		View:    view,
		Summary: service.Summarize(&view.User),
	}

	for _, tab := range domain.Tabs {
		data.Nav = append(data.Nav, navItem{Tab: tab, Active: tab.ID == view.ActiveTab})
	}

	switch view.ActiveTab {
	case domain.TabProfile:
		if view.Editing {
			for _, e := range domain.TradingExperiences {
				data.ExperienceOptions = append(data.ExperienceOptions, option{
					Value:    string(e),
					Selected: e == view.Working.TradingExperience,
				})
			}
			for _, r := range domain.RiskTolerances {
				data.RiskOptions = append(data.RiskOptions, option{
					Value:    string(r),
					Selected: r == view.Working.RiskTolerance,
				})
			}
		}

	case domain.TabSeasonal:
		tiles, err := h.seasonalSvc.Tiles(ctx, view.SelectedMonth)
		if err != nil {
			return pageData{}, err
		}
		data.Tiles = tiles

		if view.HasSelection {
			detail, err := h.seasonalSvc.Detail(ctx, view.SelectedMonth)
			if err != nil {
				return pageData{}, fmt.Errorf("failed to load selected month: %w", err)
			}
			data.Detail = detail
		}
	}

	return data, nil
}

func (h *WebHandler) render(c echo.Context, status int, name string, data pageData) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// RegisterWebRoutes registers all web routes (HTML pages)
func RegisterWebRoutes(e *echo.Echo, handler *WebHandler, sessionMiddleware echo.MiddlewareFunc) {
	e.GET("/", handler.HandleIndex)
	// Browsers fetch this on their own; it must not count as a tab switch.
	e.GET("/favicon.ico", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	e.GET("/:tab", handler.HandleTab, sessionMiddleware)
	e.POST("/profile/edit", handler.HandleToggleEdit, sessionMiddleware)
	e.POST("/profile/draft", handler.HandleDraft, sessionMiddleware)
	e.POST("/profile/save", handler.HandleSave, sessionMiddleware)
	e.POST("/profile/cancel", handler.HandleCancel, sessionMiddleware)
	e.POST("/seasonal/months/:month", handler.HandleToggleMonth, sessionMiddleware)
	e.POST("/seasonal/clear", handler.HandleClearMonth, sessionMiddleware)
}
