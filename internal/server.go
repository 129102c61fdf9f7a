package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitplanner/internal/aiplan"
	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/config"
	"github.com/2beens/fitplanner/internal/db"
	"github.com/2beens/fitplanner/internal/exercisedb"
	"github.com/2beens/fitplanner/internal/mcp"
	"github.com/2beens/fitplanner/internal/middleware"
	"github.com/2beens/fitplanner/internal/misc"
	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/runner"
	"github.com/2beens/fitplanner/internal/runner/countdown"
	"github.com/2beens/fitplanner/internal/scheduler"
	"github.com/2beens/fitplanner/internal/sessions"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

// handlers groups everything the router needs, so the router can be
// built without a database or redis.
type handlers struct {
	misc      *misc.Handler
	auth      *auth.Handler
	profile   *profile.Handler
	sessions  *sessions.Handler
	aiplan    *aiplan.Handler
	runner    *runner.Handler
	progress  *progress.Handler
	exercises *exercisedb.Handler
	mcp       http.Handler
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	loginChecker auth.Checker
	rateLimiter  middleware.RequestRateLimiter
	handlers     handlers
	runs         *runner.Registry
	scheduler    *scheduler.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	AIApiKey                string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if cfg.MigrateOnStart {
		if err := db.Migrate(dbParams); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitplanner", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitplanner-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	aiHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.AITimeoutDuration(),
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	profilesRepo := profile.NewRepo(dbPool)
	progressRepo := progress.NewRepo(dbPool)

	aiRequester := aiplan.NewRequester(aiplan.NewClient(aiplan.ClientParams{
		BaseURL:     cfg.AIApiURL,
		APIKey:      params.AIApiKey,
		Model:       cfg.AIModel,
		Temperature: cfg.AITemperature,
		MaxTokens:   cfg.AIMaxTokens,
		HTTPClient:  aiHttpClient,
		Metrics:     metricsManager,
	}))

	sessionsService := sessions.NewService(sessions.NewServiceParams{
		Repo:        sessions.NewRepo(dbPool),
		Profiles:    profilesRepo,
		AIRequester: aiRequester,
		Metrics:     metricsManager,
		Location:    cfg.Location(),
		CacheSizeMB: cfg.WeekCacheSizeMB,
	})

	runs := runner.NewRegistry(runner.NewRegistryParams{
		Sessions: sessionsService,
		Metrics:  metricsManager,
		Alerter:  countdown.DefaultAlerter(cfg.NotificationSoundPath, misc.NotificationSoundURL),
	})

	jobs, err := scheduler.New(scheduler.NewSchedulerParams{
		AuthCleaner:         authService,
		AuthCleanupSchedule: cfg.AuthCleanupSchedule,
		Runs:                runs,
		RunEvictionSchedule: cfg.RunEvictionSchedule,
		RunIdleTimeout:      cfg.RunIdleTimeoutDuration(),
	})
	if err != nil {
		return nil, fmt.Errorf("new scheduler: %w", err)
	}

	mcpService := mcp.NewContextService(mcp.NewContextServiceParams{
		Weeks:    sessionsService,
		Progress: progressRepo,
		Location: cfg.Location(),
	})

	s := &Server{
		config:       cfg,
		dbPool:       dbPool,
		redisClient:  rdb,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		rateLimiter:  redis_rate.NewLimiter(rdb),
		runs:         runs,
		scheduler:    jobs,
		handlers: handlers{
			misc:     misc.NewHandler(params.VersionInfo, cfg.NotificationSoundPath),
			auth:     auth.NewHandler(auth.NewUsersRepo(dbPool), authService),
			profile:  profile.NewHandler(profilesRepo),
			sessions: sessions.NewHandler(sessionsService),
			aiplan:   aiplan.NewHandler(aiRequester),
			runner:   runner.NewHandler(runs),
			progress: progress.NewHandler(progress.NewHandlerParams{
				Store:    progressRepo,
				Metrics:  metricsManager,
				Location: cfg.Location(),
			}),
			exercises: exercisedb.NewHandler(exercisedb.NewClient(exercisedb.NewClientParams{
				BaseURL:    cfg.ExerciseDBURL,
				Language:   cfg.ExerciseDBLanguage,
				MaxPages:   cfg.ExerciseDBMaxPages,
				HTTPClient: tracedHttpClient,
			})),
			mcp: mcp.NewHTTPHandler(mcp.NewServer(mcp.NewHandler(mcpService), params.VersionInfo)),
		},

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	s.handlers.misc.SetupRoutes(r)
	r.HandleFunc("/plans/templates", plan.HandleTemplates).Methods("GET", "OPTIONS").Name("plan-templates")

	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/register", s.handlers.auth.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", s.handlers.auth.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", s.handlers.auth.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	// rate limit the auth endpoints to prevent abuse
	authRouter.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, "login", s.config.LoginRateLimitAllowedPerMin))

	r.HandleFunc("/profile", s.handlers.profile.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", s.handlers.profile.HandleCreate).Methods("POST", "OPTIONS").Name("new-profile")
	r.HandleFunc("/profile", s.handlers.profile.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")

	// AI calls are slow and billed, limit them per client
	aiRateLimit := middleware.RateLimit(s.rateLimiter, s.metricsManager, "ai", s.config.AIRateLimitAllowedPerMin)
	r.Handle("/sessions/generate-ai", aiRateLimit(http.HandlerFunc(s.handlers.sessions.HandleGenerateAI))).Methods("POST", "OPTIONS").Name("generate-week-ai")
	r.Handle("/sessions/regenerate", aiRateLimit(http.HandlerFunc(s.handlers.sessions.HandleRegenerate))).Methods("POST", "OPTIONS").Name("regenerate-week")
	r.Handle("/ai/generate-workout", aiRateLimit(http.HandlerFunc(s.handlers.aiplan.HandleGenerate))).Methods("POST", "OPTIONS").Name("ai-generate-workout")

	r.HandleFunc("/sessions/week", s.handlers.sessions.HandleCurrentWeek).Methods("GET", "OPTIONS").Name("current-week")
	r.HandleFunc("/sessions/generate", s.handlers.sessions.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-week")
	r.HandleFunc("/sessions/today", s.handlers.sessions.HandleToday).Methods("GET", "OPTIONS").Name("today-session")
	r.HandleFunc("/sessions/last-completed", s.handlers.sessions.HandleLastCompleted).Methods("GET", "OPTIONS").Name("last-completed-session")
	r.HandleFunc("/sessions/{id}", s.handlers.sessions.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")

	r.HandleFunc("/runs", s.handlers.runner.HandleOpen).Methods("POST", "OPTIONS").Name("open-run")
	r.HandleFunc("/runs/{id}", s.handlers.runner.HandleGet).Methods("GET", "OPTIONS").Name("get-run")
	r.HandleFunc("/runs/{id}", s.handlers.runner.HandleClose).Methods("DELETE", "OPTIONS").Name("close-run")
	r.HandleFunc("/runs/{id}/exercises/{index}/sets", s.handlers.runner.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-set")
	r.HandleFunc("/runs/{id}/exercises/{index}/reset", s.handlers.runner.HandleResetExercise).Methods("POST", "OPTIONS").Name("reset-exercise")
	r.HandleFunc("/runs/{id}/exercises/{index}/weight", s.handlers.runner.HandleSetWeight).Methods("PUT", "OPTIONS").Name("set-weight")
	r.HandleFunc("/runs/{id}/rest/{action}", s.handlers.runner.HandleRest).Methods("POST", "OPTIONS").Name("rest-action")
	r.HandleFunc("/runs/{id}/save", s.handlers.runner.HandleSave).Methods("POST", "OPTIONS").Name("save-run")

	r.HandleFunc("/progress", s.handlers.progress.HandleAdd).Methods("POST", "OPTIONS").Name("new-progress")
	r.HandleFunc("/progress/dashboard", s.handlers.progress.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/progress/measurements", s.handlers.progress.HandleAddMeasurement).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/progress/measurements", s.handlers.progress.HandleListMeasurements).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/progress/body-weight", s.handlers.progress.HandleAddBodyWeight).Methods("POST", "OPTIONS").Name("new-body-weight")
	r.HandleFunc("/progress/session/{id}", s.handlers.progress.HandleListBySession).Methods("GET", "OPTIONS").Name("session-progress")

	r.HandleFunc("/exercises", s.handlers.exercises.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/categories", s.handlers.exercises.HandleCategories).Methods("GET", "OPTIONS").Name("exercise-categories")
	r.HandleFunc("/exercises/{id}/image", s.handlers.exercises.HandleImage).Methods("GET", "OPTIONS").Name("exercise-image")

	r.Handle("/mcp", s.handlers.mcp).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

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

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// AI generation may take up to the configured ai timeout
		WriteTimeout: s.config.AITimeoutDuration() + 15*time.Second,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	s.scheduler.Start()
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

	s.scheduler.Stop()
	s.runs.CloseAll()
	log.Trace("scheduler stopped, runs closed ...")

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

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
