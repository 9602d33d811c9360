package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/workoutworks/internal"
	"github.com/2beens/workoutworks/internal/config"
	"github.com/2beens/workoutworks/internal/logging"
	"github.com/2beens/workoutworks/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("envfile", ".env", "optional file with secrets, loaded into the environment")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		fmt.Printf("no env file loaded (%s), using the process environment\n", err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "workoutworks-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	jwtSecret := os.Getenv("WW_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalln("jwt secret not set. use WW_JWT_SECRET")
	}

	redisPassword := os.Getenv("WW_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use WW_REDIS_PASS")
	}

	postgresPassword := os.Getenv("WW_POSTGRES_PASS")
	if postgresPassword == "" {
		log.Warnln("postgres password not set. use WW_POSTGRES_PASS")
	}

	inferenceAPIKey := os.Getenv("OPENAI_API_KEY")
	if inferenceAPIKey == "" {
		log.Errorf("inference API key not set, use OPENAI_API_KEY env var to set it")
	}

	s3AccessKey := os.Getenv("WW_S3_ACCESS_KEY")
	s3SecretKey := os.Getenv("WW_S3_SECRET_KEY")
	if s3AccessKey == "" || s3SecretKey == "" {
		log.Errorf("avatar storage credentials not set. use WW_S3_ACCESS_KEY and WW_S3_SECRET_KEY")
	}

	mcpSecret := os.Getenv("WW_MCP_SECRET")
	if cfg.MCPEnabled && mcpSecret == "" {
		log.Warnln("mcp enabled but WW_MCP_SECRET not set")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			JWTSecret:               jwtSecret,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			InferenceAPIKey:         inferenceAPIKey,
			S3AccessKey:             s3AccessKey,
			S3SecretKey:             s3SecretKey,
			MCPSecret:               mcpSecret,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
