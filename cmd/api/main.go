package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"google.golang.org/grpc"

	"stringlang/internal/common/pagination"
	"stringlang/internal/config"
	pgRepo "stringlang/internal/infra/adapter/persistence/postgres"
	"stringlang/internal/infra/db"
	"stringlang/internal/infra/fetcher"
	"stringlang/internal/infra/scraper"
	grpcapi "stringlang/internal/interface/grpc"
	"stringlang/internal/observability/logging"
	"stringlang/internal/observability/slo"
	"stringlang/internal/observability/tracing"
	"stringlang/internal/resilience/circuitbreaker"
	"stringlang/internal/resilience/retry"
	analysisUC "stringlang/internal/usecase/analysis"
	pkgconfig "stringlang/pkg/config"
	"stringlang/pkg/ratelimit"

	hhttp "stringlang/internal/handler/http"
	hanalysis "stringlang/internal/handler/http/analysis"
	hauth "stringlang/internal/handler/http/auth"
	hcatalog "stringlang/internal/handler/http/catalog"
	"stringlang/internal/handler/http/middleware"
	"stringlang/internal/handler/http/pathutil"
	"stringlang/internal/handler/http/requestid"
	authservice "stringlang/internal/service/auth"

	_ "stringlang/docs" // swagger docs
)

// @title           stringlang API
// @version         1.0
// @description     Counts the characters of a text per Unicode block and returns a sparse report
// @description     in catalog order. Reports can be archived and read back by authenticated users.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by /auth/token, sent as "Bearer {token}".

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	// Configuration errors are fatal; there is no safe default for a bad limit
	cfg, err := config.LoadAppConfig()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	profiles, err := config.LoadProfiles(cfg.ProfilesPath)
	if err != nil {
		logger.Error("failed to load profiles", slog.String("path", cfg.ProfilesPath), slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	version := getVersion()
	shutdownTracing := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: "stringlang-api",
		Version:     version,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, logger)

	// The archive is optional: without DATABASE_URL only counting is served
	database := initDatabase(ctx, logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
		if cfg.Auth.JWTSecret == "" {
			logger.Error("JWT_SECRET must be set when DATABASE_URL is set")
			os.Exit(1)
		}
	}

	svc := &analysisUC.Service{
		Profiles: profiles,
		Config: analysisUC.Config{
			MaxRunes:     cfg.Analysis.MaxRunes,
			MaxBatch:     cfg.Analysis.MaxBatch,
			Concurrency:  cfg.Analysis.Concurrency,
			MaxFeedItems: cfg.Analysis.MaxFeedItems,
		},
	}
	// One breaker guards the pool for the repository and the readiness check
	var breaker *circuitbreaker.DBCircuitBreaker
	if database != nil {
		breaker = circuitbreaker.NewDBCircuitBreaker(database)
		svc.Repo = pgRepo.NewAnalysisRepoWithBreaker(breaker, retry.DBConfig())
		go db.ReportPoolStats(ctx, database, 15*time.Second)
	}
	if cfg.FetchEnabled {
		initFetchers(logger, svc)
	}

	tracker := slo.NewTracker()
	go tracker.Run(ctx, time.Minute)

	srv := &server{
		cfg:      cfg,
		logger:   logger,
		svc:      svc,
		database: database,
		breaker:  breaker,
		tracker:  tracker,
		version:  version,
	}
	handler, limiters := srv.handler(ctx)

	var grpcServer *grpc.Server
	if cfg.GRPC.Addr != "" {
		grpcServer = startGRPC(logger, cfg.GRPC.Addr, svc)
	}

	runServer(ctx, cancel, logger, cfg, handler, limiters, version)

	// HTTP is drained by now; stop gRPC and flush spans
	if grpcServer != nil {
		grpcServer.GracefulStop()
		logger.Info("grpc server stopped")
	}
	flushCtx, flushCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
}

// initDatabase opens the archive and applies migrations. It returns nil when
// DATABASE_URL is unset: the counting endpoints work without an archive.
func initDatabase(ctx context.Context, logger *slog.Logger) *sql.DB {
	database, err := db.Open(ctx)
	if errors.Is(err, db.ErrNoDatabaseURL) {
		logger.Warn("DATABASE_URL not set, archive disabled")
		return nil
	}
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initFetchers wires URL and feed acquisition. A bad fetch configuration
// disables acquisition instead of stopping the server.
func initFetchers(logger *slog.Logger, svc *analysisUC.Service) {
	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Warn("content fetching disabled due to configuration error", slog.Any("error", err))
		return
	}
	svc.Content = fetcher.NewReadabilityFetcher(fetchCfg)
	svc.Feeds = scraper.NewRSSFetcher(fetchCfg)
	logger.Info("content fetching enabled",
		slog.Duration("timeout", fetchCfg.Timeout),
		slog.Int64("max_body_size", fetchCfg.MaxBodySize),
		slog.Int("max_redirects", fetchCfg.MaxRedirects))
}

// getVersion returns VERSION, set at build or deploy time, or "dev".
func getVersion() string {
	return pkgconfig.GetEnvString("VERSION", "dev")
}

// server carries what the HTTP routes need from main.
type server struct {
	cfg      *config.AppConfig
	logger   *slog.Logger
	svc      *analysisUC.Service
	database *sql.DB
	breaker  *circuitbreaker.DBCircuitBreaker
	tracker  *slo.Tracker
	version  string
}

// handler builds the routes and the middleware chain. The returned limiters
// need their idle buckets cleaned up.
func (s *server) handler(ctx context.Context) (http.Handler, []*middleware.RateLimiter) {
	rl := pkgconfig.LoadRateLimitConfig()

	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		s.logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var ipExtractor middleware.IPExtractor
	if proxyConfig.Enabled {
		ipExtractor = middleware.NewTrustedProxyExtractor(*proxyConfig)
		s.logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	} else {
		ipExtractor = &middleware.RemoteAddrExtractor{}
	}

	metrics := ratelimit.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	newLimiter := func(name string, cfg ratelimit.Config, key middleware.KeyFunc) *middleware.RateLimiter {
		l, err := ratelimit.New(name, cfg, ratelimit.WithMetrics(metrics))
		if err != nil {
			s.logger.Error("invalid rate limit configuration", slog.String("limiter", name), slog.Any("error", err))
			os.Exit(1)
		}
		return middleware.NewRateLimiter(l, key, s.logger)
	}

	// Login attempts are always limited: 5 per minute per address.
	authLimiter := newLimiter("auth", ratelimit.Config{Limit: 5, Window: time.Minute, MaxKeys: rl.Limiter.MaxKeys, IdleTTL: rl.Limiter.IdleTTL}, middleware.IPKey(ipExtractor))
	limiters := []*middleware.RateLimiter{authLimiter}

	var ipLimiter, userLimiter *middleware.RateLimiter
	if rl.Enabled {
		ipLimiter = newLimiter("ip", rl.Limiter, middleware.IPKey(ipExtractor))
		userLimiter = newLimiter("user", rl.User, middleware.UserKey(hauth.Subject))
		limiters = append(limiters, ipLimiter, userLimiter)
		s.logger.Info("rate limiting initialized",
			slog.Int("ip_limit", rl.Limiter.Limit),
			slog.Duration("ip_window", rl.Limiter.Window),
			slog.Int("user_limit", rl.User.Limit),
			slog.Duration("user_window", rl.User.Window))
	} else {
		s.logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := http.NewServeMux()

	health := &hhttp.HealthHandler{DB: s.database, Version: s.version}
	if s.breaker != nil {
		health.Breaker = s.breaker
	}
	for _, l := range limiters {
		health.Limiters = append(health.Limiters, l.Limiter())
	}
	mux.Handle("/health", health)
	ready := &hhttp.ReadyHandler{}
	switch {
	case s.breaker != nil:
		ready.DB = s.breaker
	case s.database != nil:
		ready.DB = s.database
	}
	mux.Handle("/ready", ready)
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	hanalysis.Register(mux, s.svc)
	hcatalog.Register(mux, s.svc)

	if s.svc.Repo != nil {
		secret := []byte(s.cfg.Auth.JWTSecret)
		provider, err := hauth.LoadEnvProvider()
		if err != nil {
			s.logger.Error("credentials validation failed", slog.Any("error", err))
			os.Exit(1)
		}
		authSvc := authservice.NewAuthService(provider)
		s.logger.Info("archive auth enabled",
			slog.String("provider", authSvc.GetProvider().Name()),
			slog.Duration("token_ttl", s.cfg.Auth.TokenTTL))
		issuer := &hauth.TokenIssuer{Secret: secret, TTL: s.cfg.Auth.TokenTTL}
		mux.Handle("POST /auth/token", authLimiter.Middleware(hauth.TokenHandler(authSvc, issuer)))

		authz := hauth.NewAuthz(secret)
		protect := func(h http.Handler) http.Handler {
			if userLimiter != nil {
				h = userLimiter.Middleware(h)
			}
			return authz(h)
		}
		hanalysis.RegisterArchive(mux, s.svc, pagination.LoadFromEnv(), protect)
	}

	gzip, err := middleware.Gzip()
	if err != nil {
		s.logger.Error("failed to build gzip middleware", slog.Any("error", err))
		os.Exit(1)
	}

	mws := []func(http.Handler) http.Handler{gzip, requestid.Middleware}
	if ipLimiter != nil {
		mws = append(mws, ipLimiter.Middleware)
	}
	mws = append(mws,
		hhttp.Recover(s.logger),
		tracing.Middleware,
		hhttp.Logging(s.logger),
		hhttp.InputValidation(),
		hhttp.Timeout(s.cfg.HTTP.RequestTimeout),
		hhttp.LimitRequestBody(s.cfg.HTTP.MaxBodyBytes),
		hhttp.MetricsMiddleware(s.tracker),
	)
	s.logger.Debug("http metrics path labels", slog.Int("expected_cardinality", pathutil.GetExpectedCardinality()))
	return hhttp.Chain(mux, mws...), limiters
}

// startGRPC serves the Analyzer service on addr in the background. A listen
// failure is fatal.
func startGRPC(logger *slog.Logger, addr string, svc *analysisUC.Service) *grpc.Server {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("grpc listen failed", slog.String("addr", addr), slog.Any("error", err))
		os.Exit(1)
	}
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcapi.UnaryLogging(logger)))
	grpcapi.RegisterAnalyzerServer(gs, grpcapi.NewServer(svc))
	go func() {
		logger.Info("grpc server starting", slog.String("addr", addr))
		if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Error("grpc server failed", slog.Any("error", err))
		}
	}()
	return gs
}

// runServer serves HTTP until SIGINT or SIGTERM, then drains in-flight
// requests within the shutdown timeout.
func runServer(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, cfg *config.AppConfig, handler http.Handler, limiters []*middleware.RateLimiter, version string) {
	interval := pkgconfig.LoadRateLimitConfig().CleanupInterval
	for _, l := range limiters {
		go l.RunCleanup(ctx, interval)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
