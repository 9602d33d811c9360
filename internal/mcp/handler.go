package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/workoutworks/internal/aggregator"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and service results into
// tool results. Failures are reported as tool errors, never as protocol
// errors.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

type SchemaInput struct{}

type WeeklyProteinInput struct {
	UserID string `json:"user_id" jsonschema:"Owner of the meals (uuid)"`
	Date   string `json:"date,omitempty" jsonschema:"Any day of the wanted week (YYYY-MM-DD), defaults to today"`
}

type WorkoutVolumeInput struct {
	UserID   string `json:"user_id" jsonschema:"Owner of the exercises (uuid)"`
	FromDate string `json:"from_date" jsonschema:"Start date, inclusive (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date, inclusive (YYYY-MM-DD)"`
}

type BodyCompositionTrendInput struct {
	UserID string `json:"user_id" jsonschema:"Owner of the measurements (uuid)"`
	Window int    `json:"window,omitempty" jsonschema:"Moving average window, defaults to 3"`
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, SchemaInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SchemaInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetWeeklyProteinTool() func(context.Context, *mcp.CallToolRequest, WeeklyProteinInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeeklyProteinInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(strings.TrimSpace(in.UserID))
		if err != nil {
			return errorResult("Invalid user_id: use a uuid"), nil, nil
		}
		if in.Date != "" {
			if _, err := aggregator.ParseDate(in.Date); err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
		}

		week, err := h.service.WeeklyProtein(ctx, userID, strings.TrimSpace(in.Date))
		if err != nil {
			return errorResult("Error fetching weekly protein: " + err.Error()), nil, nil
		}
		return jsonResult(week), nil, nil
	}
}

func (h *Handler) GetWorkoutVolumeTool() func(context.Context, *mcp.CallToolRequest, WorkoutVolumeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutVolumeInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(strings.TrimSpace(in.UserID))
		if err != nil {
			return errorResult("Invalid user_id: use a uuid"), nil, nil
		}
		from, err := aggregator.ParseDate(in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := aggregator.ParseDate(in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		if to.Before(from) {
			return errorResult("to_date must not be before from_date"), nil, nil
		}

		days, err := h.service.WorkoutVolume(ctx, userID, from, to)
		if err != nil {
			return errorResult("Error fetching workout volume: " + err.Error()), nil, nil
		}
		return jsonResult(days), nil, nil
	}
}

func (h *Handler) GetBodyCompositionTrendTool() func(context.Context, *mcp.CallToolRequest, BodyCompositionTrendInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in BodyCompositionTrendInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(strings.TrimSpace(in.UserID))
		if err != nil {
			return errorResult("Invalid user_id: use a uuid"), nil, nil
		}
		if in.Window < 0 || in.Window > 31 {
			return errorResult("Invalid window: use 1 to 31"), nil, nil
		}

		trend, err := h.service.BodyCompositionTrend(ctx, userID, in.Window)
		if err != nil {
			return errorResult("Error fetching body composition: " + err.Error()), nil, nil
		}
		return jsonResult(trend), nil, nil
	}
}
