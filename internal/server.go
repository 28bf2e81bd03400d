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
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rebld/rebldserver/internal/ai"
	"github.com/rebld/rebldserver/internal/config"
	"github.com/rebld/rebldserver/internal/db"
	"github.com/rebld/rebldserver/internal/gymstats/exercisecache"
	"github.com/rebld/rebldserver/internal/gymstats/performance"
	"github.com/rebld/rebldserver/internal/gymstats/recommend"
	"github.com/rebld/rebldserver/internal/gymstats/sportbucket"
	"github.com/rebld/rebldserver/internal/middleware"
	"github.com/rebld/rebldserver/internal/ratelimit"
	"github.com/rebld/rebldserver/internal/telemetry/metrics"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/users"
	"github.com/rebld/rebldserver/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	usersService       *users.Service
	exerciseStore      *exercisecache.CachedRepo
	bucketStore        *sportbucket.Store
	performanceService *performance.Service
	ranker             *recommend.Ranker
	explainService     *ai.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	OpenAIApiKey            string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "rebld_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "rebld-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Minute,
	}

	limits, err := ratelimit.LimitsFromConfig(ratelimit.DefaultLimits(), params.Config.RateLimits)
	if err != nil {
		return nil, fmt.Errorf("rate limits config: %w", err)
	}
	limiter := ratelimit.NewLimiter(metricsManager, ratelimit.WithLimits(limits))

	usersService := users.NewService(users.NewRepo(dbPool))
	exerciseStore := exercisecache.NewCachedRepo(
		exercisecache.NewRepo(dbPool),
		params.Config.ExerciseCacheSizeMB,
		time.Duration(params.Config.ExerciseCacheTTLSeconds)*time.Second,
	)
	bucketStore := sportbucket.NewStore(
		sportbucket.NewRepo(dbPool),
		usersService,
		sportbucket.NewStatsCache(rdb, time.Duration(params.Config.BucketStatsCacheTTLSecond)*time.Second),
		metricsManager,
	)

	if params.OpenAIApiKey == "" {
		log.Warnln("openai api key not set, exercise explanations will fail")
	}
	explainer := ai.NewOpenAIExplainer(params.OpenAIApiKey, params.Config.OpenAIModel, tracedHttpClient)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		usersService:       usersService,
		exerciseStore:      exerciseStore,
		bucketStore:        bucketStore,
		performanceService: performance.NewService(performance.NewRepo(dbPool), bucketStore, metricsManager),
		ranker:             recommend.NewRanker(usersService, exerciseStore),
		explainService:     ai.NewService(explainer, exerciseStore, limiter),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")

	bucketHandler := sportbucket.NewHandler(s.bucketStore)
	r.HandleFunc("/buckets/usage", bucketHandler.HandleRecordUsage).Methods("POST", "OPTIONS").Name("bucket-usage")
	r.HandleFunc("/buckets/performance", bucketHandler.HandleRecordPerformance).Methods("POST", "OPTIONS").Name("bucket-performance")
	r.HandleFunc("/buckets/{sport}", bucketHandler.HandleQuery).Methods("GET", "OPTIONS").Name("bucket-query")
	r.HandleFunc("/buckets/{sport}/stats", bucketHandler.HandleStats).Methods("GET", "OPTIONS").Name("bucket-stats")

	recommendHandler := recommend.NewHandler(s.ranker)
	// registered before /exercises/{name}, mux matches in order
	r.HandleFunc("/exercises/therapeutic", recommendHandler.HandleTherapeutic).Methods("GET", "OPTIONS").Name("exercises-therapeutic")
	r.HandleFunc("/recommendations", recommendHandler.HandleRecommendations).Methods("GET", "OPTIONS").Name("recommendations")

	exerciseHandler := exercisecache.NewHandler(s.exerciseStore)
	r.HandleFunc("/exercises", exerciseHandler.HandleUpsert).Methods("POST", "OPTIONS").Name("exercise-upsert")
	r.HandleFunc("/exercises/{name}", exerciseHandler.HandleGet).Methods("GET", "OPTIONS").Name("exercise-get")
	r.HandleFunc("/exercises/{name}/injury-data", exerciseHandler.HandleUpdateInjuryData).Methods("PUT", "OPTIONS").Name("exercise-injury-data")
	r.HandleFunc("/exercises/{name}/sport-ratings", exerciseHandler.HandleUpdateSportRatings).Methods("PUT", "OPTIONS").Name("exercise-sport-ratings")

	usersHandler := users.NewHandler(s.usersService)
	r.HandleFunc("/users/me", usersHandler.HandleEnsure).Methods("POST", "OPTIONS").Name("user-ensure")
	r.HandleFunc("/users/me", usersHandler.HandleGet).Methods("GET", "OPTIONS").Name("user-get")
	r.HandleFunc("/users/me/injury-profile", usersHandler.HandleUpdateInjuryProfile).Methods("PUT", "OPTIONS").Name("user-injury-profile")
	r.HandleFunc("/users/me/training-preferences", usersHandler.HandleUpdateTrainingPreferences).Methods("PUT", "OPTIONS").Name("user-training-preferences")
	r.HandleFunc("/users/me/code", usersHandler.HandleEnsureUserCode).Methods("POST", "OPTIONS").Name("user-code")

	performanceHandler := performance.NewHandler(s.performanceService)
	r.HandleFunc("/performance", performanceHandler.HandleRecord).Methods("POST", "OPTIONS").Name("performance-record")
	r.HandleFunc("/performance/history", performanceHandler.HandleHistory).Methods("GET", "OPTIONS").Name("performance-history")

	// llm backed routes are throttled per client ip on top of the per user action limits
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	aiRouter := r.PathPrefix("/ai").Subrouter()
	aiRouter.Use(middleware.RateLimit(reqRateLimiter, s.metricsManager, "ai", s.config.HttpRateLimitAllowedPerMin))
	explainHandler := ai.NewHandler(s.explainService)
	aiRouter.HandleFunc("/explain", explainHandler.HandleExplain).Methods("POST", "OPTIONS").Name("ai-explain")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.UserIdentity())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, fmt.Sprintf("rebld server [%s]", s.versionInfo))
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

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf("failed to shutdown metrics server: %s", err)
		}
	}

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

	log.Warnln("server shut down")
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
