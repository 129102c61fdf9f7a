package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/sessions"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=mcp_test

type contextService interface {
	CurrentWeek(ctx context.Context, userID uuid.UUID) (*sessions.Week, error)
	PlanTemplate(dayCount int, goal, level string) (*plan.Preview, error)
	WorkoutProgress(ctx context.Context, userID, sessionID uuid.UUID) (*WorkoutProgress, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*progress.Dashboard, error)
}

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetCurrentWeekSessions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}
	week, err := h.service.CurrentWeek(ctx, userID)
	if err != nil {
		log.Errorf("mcp: current week for %s: %s", userID, err)
		return mcp.NewToolResultError("Error loading current week: " + err.Error()), nil
	}
	return jsonResult(week)
}

func (h *Handler) GetPlanTemplate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tmpl, err := h.service.PlanTemplate(
		req.GetInt("day_count", 0),
		req.GetString("goal", ""),
		req.GetString("level", ""),
	)
	if err != nil {
		return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
	}
	return jsonResult(tmpl)
}

func (h *Handler) GetWorkoutProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}
	rawID, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	sessionID, err := uuid.Parse(rawID)
	if err != nil {
		return mcp.NewToolResultError("Invalid session_id: " + rawID), nil
	}

	wp, err := h.service.WorkoutProgress(ctx, userID, sessionID)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return mcp.NewToolResultError("Session not found"), nil
	}
	if err != nil {
		log.Errorf("mcp: workout progress %s: %s", sessionID, err)
		return mcp.NewToolResultError("Error loading workout progress: " + err.Error()), nil
	}
	return jsonResult(wp)
}

func (h *Handler) GetDashboard(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}
	dashboard, err := h.service.Dashboard(ctx, userID)
	if err != nil {
		log.Errorf("mcp: dashboard for %s: %s", userID, err)
		return mcp.NewToolResultError("Error loading dashboard: " + err.Error()), nil
	}
	return jsonResult(dashboard)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("Error encoding response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
