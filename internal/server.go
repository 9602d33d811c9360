package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/workoutworks/internal/access"
	"github.com/2beens/workoutworks/internal/auth"
	"github.com/2beens/workoutworks/internal/body"
	"github.com/2beens/workoutworks/internal/config"
	"github.com/2beens/workoutworks/internal/db"
	"github.com/2beens/workoutworks/internal/drafts"
	"github.com/2beens/workoutworks/internal/inference"
	fitnessmcp "github.com/2beens/workoutworks/internal/mcp"
	"github.com/2beens/workoutworks/internal/meals"
	"github.com/2beens/workoutworks/internal/middleware"
	"github.com/2beens/workoutworks/internal/profiles"
	"github.com/2beens/workoutworks/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/workoutworks/internal/telemetry/metrics/middleware"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/internal/workouts"
	"github.com/2beens/workoutworks/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const sessionCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mcpSecret         string

	config           *config.Config
	dbPool           *pgxpool.Pool
	redisClient      *redis.Client
	loginChecker     *auth.LoginChecker
	authService      *auth.Service
	requestTracker   *auth.RequestTracker
	inferenceService *inference.Service
	avatarStore      *profiles.AvatarStore

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	JWTSecret               string
	RedisPassword           string
	PostgresPassword        string
	InferenceAPIKey         string
	S3AccessKey             string
	S3SecretKey             string
	MCPSecret               string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if params.JWTSecret == "" {
		return nil, errors.New("jwt secret not set")
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate db: %w", err)
		}
		log.Debugln("db migrations applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	tokens := auth.NewTokenIssuer(params.JWTSecret, cfg.SessionTTL)
	authService := auth.NewService(cfg.SessionTTL, rdb, tokens)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workoutworks-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.InferenceTimeout,
	}
	if params.InferenceAPIKey == "" {
		log.Warnln("inference api key not set, estimates will fail")
	}
	inferenceClient := inference.NewClient(inference.ClientParams{
		BaseURL:          cfg.InferenceBaseURL,
		APIKey:           params.InferenceAPIKey,
		Model:            cfg.InferenceModel,
		CacheSizeMB:      cfg.InferenceCacheSizeMB,
		CacheExpireHours: cfg.InferenceCacheExpireHours,
		HTTPClient:       tracedHttpClient,
		MetricsManager:   metricsManager,
	})

	avatarStore, err := profiles.NewAvatarStore(ctx, profiles.AvatarStoreParams{
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		BaseEndpoint:  cfg.S3BaseEndpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
		AccessKey:     params.S3AccessKey,
		SecretKey:     params.S3SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("new avatar store: %w", err)
	}

	s := &Server{
		config:           cfg,
		dbPool:           dbPool,
		versionInfo:      params.VersionInfo,
		mcpSecret:        params.MCPSecret,
		redisClient:      rdb,
		authService:      authService,
		loginChecker:     auth.NewLoginChecker(cfg.SessionTTL, rdb, tokens),
		requestTracker:   auth.NewDefaultRequestTracker(metricsManager),
		inferenceService: inference.NewService(inferenceClient),
		avatarStore:      avatarStore,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	go s.cleanSessionsPeriodically(ctx, sessionCleanupInterval)

	return s, nil
}

func (s *Server) cleanSessionsPeriodically(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")

	profilesRepo := profiles.NewRepo(s.dbPool)
	guard := access.NewGuard(profilesRepo)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(auth.NewUsersRepo(s.dbPool), s.authService, s.requestTracker)
	authHandler.SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter,
		"auth",
		s.config.AuthRateLimitAllowedPerMin,
		s.metricsManager,
	))

	inferenceHandler := inference.NewHandler(s.inferenceService)
	r.HandleFunc("/api/calculate-protein", inferenceHandler.HandleCalculateProtein).Methods("POST", "OPTIONS").Name("calculate-protein")
	r.HandleFunc("/api/calculate-volume", inferenceHandler.HandleCalculateVolume).Methods("POST", "OPTIONS").Name("calculate-volume")
	r.HandleFunc("/api/predict-muscle-group", inferenceHandler.HandlePredictMuscleGroup).Methods("POST", "OPTIONS").Name("predict-muscle-group")

	bodyRepo := body.NewRepo(s.dbPool)
	body.NewHandler(bodyRepo, guard).SetupRoutes(r)

	mealsService := meals.NewService(meals.NewRepo(s.dbPool), s.metricsManager)
	meals.NewHandler(mealsService, guard).SetupRoutes(r)

	workoutsService := workouts.NewService(workouts.NewRepo(s.dbPool), s.inferenceService)
	workouts.NewHandler(workoutsService, guard).SetupRoutes(r)

	profiles.NewHandler(profilesRepo, s.avatarStore).SetupRoutes(r)

	drafts.NewHandler(drafts.NewStore(s.redisClient, drafts.DefaultTTL)).SetupRoutes(r)

	if s.config.MCPEnabled {
		if s.mcpSecret == "" {
			log.Warnln("mcp enabled but WW_MCP_SECRET not set, every /mcp request will be rejected")
		}
		mcpServer := fitnessmcp.NewServer(s.dbPool, mealsService, workoutsService, bodyRepo)
		r.PathPrefix("/mcp").Handler(fitnessmcp.NewHTTPHandler(mcpServer, s.mcpSecret)).Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{
		"service": "workoutworks",
		"version": s.versionInfo,
	}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if s.requestTracker != nil {
		stats := s.requestTracker.Stats()
		log.Debugf("auth request tracker at shutdown: %+v", stats)
		s.requestTracker.Reset()
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
