// Package mcp exposes the workout context of the authenticated user to MCP
// clients: current week, plan templates, logged progress and dashboard.
package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/2beens/fitplanner/internal/auth"
)

var (
	toolCurrentWeekSessions = mcp.NewTool("get_current_week_sessions",
		mcp.WithDescription("Returns the workout sessions of the current week (Monday start), ordered by date, with exercises, completion state and dates."),
	)
	toolPlanTemplate = mcp.NewTool("get_plan_template",
		mcp.WithDescription("Returns the static plan the service would generate for a day count, goal and fitness level. Out of range day counts fall back to 3."),
		mcp.WithNumber("day_count", mcp.Description("Training days per week (2-6)")),
		mcp.WithString("goal", mcp.Description("Training goal"), mcp.Enum("hypertrophy", "fat-loss", "conditioning", "maintenance")),
		mcp.WithString("level", mcp.Description("Fitness level"), mcp.Enum("beginner", "intermediate", "advanced")),
	)
	toolWorkoutProgress = mcp.NewTool("get_workout_progress",
		mcp.WithDescription("Returns one workout session and the progress entries (weight, reps, difficulty, body weight) logged against it."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Workout session id (uuid)")),
	)
	toolDashboard = mcp.NewTool("get_dashboard",
		mcp.WithDescription("Returns the progress dashboard: completed sessions in total and this week, last completed session, body weight history and recent entries."),
	)
)

// NewServer builds an MCP server with the workout context tools.
func NewServer(h *Handler, version string) *server.MCPServer {
	s := server.NewMCPServer("fitplanner-context", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Fitplanner workout data of the authenticated user: weekly sessions, plan templates, logged progress and dashboard."),
	)

	s.AddTools(
		server.ServerTool{Tool: toolCurrentWeekSessions, Handler: h.GetCurrentWeekSessions},
		server.ServerTool{Tool: toolPlanTemplate, Handler: h.GetPlanTemplate},
		server.ServerTool{Tool: toolWorkoutProgress, Handler: h.GetWorkoutProgress},
		server.ServerTool{Tool: toolDashboard, Handler: h.GetDashboard},
	)

	return s
}

// NewHTTPHandler serves s over streamable HTTP. The user id the auth
// middleware put on the request context is carried into tool calls.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				return auth.WithUserID(ctx, userID)
			}
			return ctx
		}),
	)
}
