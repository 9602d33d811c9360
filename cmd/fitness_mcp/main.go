// Package main runs the fitness MCP server over stdio, for local MCP clients.
// The backend serves the same tools on /mcp over streamable HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/workoutworks/internal/body"
	"github.com/2beens/workoutworks/internal/config"
	"github.com/2beens/workoutworks/internal/db"
	fitnessmcp "github.com/2beens/workoutworks/internal/mcp"
	"github.com/2beens/workoutworks/internal/meals"
	"github.com/2beens/workoutworks/internal/telemetry/metrics"
	"github.com/2beens/workoutworks/internal/workouts"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the protocol
	log.SetOutput(os.Stderr)

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("WW_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	// read only tools, no estimates and no meal writes
	mealsService := meals.NewService(meals.NewRepo(dbPool), metrics.NewManager("fitness_mcp", "stdio", prometheus.NewRegistry()))
	workoutsService := workouts.NewService(workouts.NewRepo(dbPool), nil)
	server := fitnessmcp.NewServer(dbPool, mealsService, workoutsService, body.NewRepo(dbPool))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
