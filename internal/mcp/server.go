package mcp

import (
	"crypto/subtle"
	"net/http"

	"github.com/2beens/workoutworks/internal/body"
	"github.com/2beens/workoutworks/internal/meals"
	"github.com/2beens/workoutworks/internal/workouts"
	"github.com/2beens/workoutworks/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const SecretHeader = "X-MCP-Secret"

// NewServer builds the read only fitness MCP server. The backend mounts it
// on /mcp, cmd/fitness_mcp serves it over stdio.
func NewServer(pool *pgxpool.Pool, mealsService *meals.Service, workoutsService *workouts.Service, bodyRepo *body.Repo) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), mealsService, workoutsService, bodyRepo)
	return newServer(NewHandler(svc))
}

func newServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "workoutworks-fitness",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_schema",
		Description: "Returns the DB schema of the fitness tables (profiles, metric, goal, meal, exercise): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_protein",
		Description: "Returns protein eaten per day, Monday to Sunday, for the week containing date, plus the daily protein goal. Args: user_id; optional: date (YYYY-MM-DD).",
	}, h.GetWeeklyProteinTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_volume",
		Description: "Returns total workout volume per day for every day between from_date and to_date, inclusive. Args: user_id, from_date, to_date (YYYY-MM-DD).",
	}, h.GetWorkoutVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_composition_trend",
		Description: "Returns all body measurements with moving average trends of skeletal muscle mass and body fat, the current goal and what is left to reach it. Args: user_id; optional: window.",
	}, h.GetBodyCompositionTrendTool())

	return s
}

// NewHTTPHandler serves the server over streamable HTTP to clients that
// present the shared secret.
func NewHTTPHandler(server *mcp.Server, secret string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := r.Header.Get(SecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			log.Tracef("mcp: rejected request from %s", r.RemoteAddr)
			pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		streamable.ServeHTTP(w, r)
	})
}
