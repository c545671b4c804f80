package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aliyacapital/seriesdash/internal/auth"
	"github.com/aliyacapital/seriesdash/internal/cache"
	"github.com/aliyacapital/seriesdash/internal/config"
	"github.com/aliyacapital/seriesdash/internal/cronrunner"
	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/handlers"
	"github.com/aliyacapital/seriesdash/internal/logger"
	"github.com/aliyacapital/seriesdash/internal/repositories"
	"github.com/aliyacapital/seriesdash/internal/services"

	_ "github.com/aliyacapital/seriesdash/docs"
)

const serviceName = "seriesdash"

func main() {
	cfg, err := config.Load(os.Getenv("SERIESDASH_CONFIG"))
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.App.Env, cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	database, err := db.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	store, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal("failed to set up cache", zap.Error(err))
	}

	// Repositories
	seriesRepo := repositories.NewSeriesRepository(database)
	prefsRepo := repositories.NewPreferencesRepository(database)
	runRepo := repositories.NewAssistantRunRepository(database)
	var executor repositories.QueryExecutor
	if cfg.Assistant.Executor == "direct" {
		executor = repositories.NewDirectQueryExecutor(database)
	} else {
		executor = repositories.NewRPCQueryExecutor(database)
	}

	// Services
	reportingService := services.NewReportingService(seriesRepo, store, services.ReportingOptions{
		CacheTTL:   cfg.Cache.TTL,
		HouseNames: cfg.Reports.HouseInvestors,
	}, log)
	prefsService := services.NewPreferencesService(prefsRepo, cfg.Auth.SessionMaxAge)

	var assistantService services.AssistantService
	completer, err := services.NewCompleter(cfg.LLM)
	if err != nil {
		log.Warn("assistant disabled", zap.Error(err))
	} else {
		assistantService = services.NewAssistantService(completer, executor, runRepo, cfg.Assistant.SummaryRows, log)
		log.Info("assistant enabled", zap.String("provider", completer.Provider()), zap.String("model", completer.Model()))
	}

	// Auth
	var requireUser func(http.Handler) http.Handler
	var authHandler *handlers.AuthHandler
	if cfg.Auth.DisableAuth {
		log.Warn("authentication disabled", zap.String("dev_user", cfg.Auth.DevUserEmail))
		requireUser = auth.DevMiddleware(cfg.Auth.DevUserEmail)
	} else {
		if cfg.Auth.JWTSecret == "" {
			log.Fatal("auth.jwt_secret is required unless auth.disable_auth is set")
		}
		tokens := auth.JWT{Secret: []byte(cfg.Auth.JWTSecret), TokenTTL: cfg.Auth.SessionMaxAge}
		provider := auth.NewGoTrueClient(cfg.Auth.ProviderURL, cfg.Auth.ProviderAPIKey, cfg.Auth.RedirectURL, cfg.Auth.ProviderTimeout)
		authService := auth.NewService(provider, tokens, prefsService, cfg.Auth.AllowedDomain, log)
		authHandler = handlers.NewAuthHandler(authService, log)
		requireUser = auth.Middleware(tokens, prefsService, log)
	}

	// Handlers
	seq := services.NewSequencer(cfg.Server.FetchDebounce)
	reportingHandler := handlers.NewReportingHandler(reportingService, seq, log)
	lookupHandler := handlers.NewLookupHandler(reportingService, prefsService, seq, cfg.Reports.SuggestLimit, log)
	exportHandler := handlers.NewExportHandler(reportingHandler, lookupHandler, log)
	prefsHandler := handlers.NewPreferencesHandler(prefsService, log)

	router := mux.NewRouter()
	router.HandleFunc("/health", handlers.Health(serviceName, database.Health))
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/schema", handlers.HandleSchema)
	if authHandler != nil {
		api.HandleFunc("/auth/login", authHandler.HandleLogin)
	}

	protected := api.NewRoute().Subrouter()
	protected.Use(requireUser)
	if authHandler != nil {
		protected.HandleFunc("/auth/logout", authHandler.HandleLogout)
	}

	// Reporting endpoints
	protected.HandleFunc("/reports/dashboard", reportingHandler.HandleDashboard)
	protected.HandleFunc("/reports/pareto", reportingHandler.HandlePareto)
	protected.HandleFunc("/reports/waterfall", reportingHandler.HandleWaterfall)
	protected.HandleFunc("/reports/histogram", reportingHandler.HandleHistogram)
	protected.HandleFunc("/reports/top-spv", reportingHandler.HandleTopSPVs)
	protected.HandleFunc("/reports/top-rm", reportingHandler.HandleTopRMs)
	protected.HandleFunc("/reports/classes", reportingHandler.HandleClasses)
	protected.HandleFunc("/reports/scatter", reportingHandler.HandleScatter)
	protected.HandleFunc("/reports/series-summary", reportingHandler.HandleSeriesSummary)
	protected.HandleFunc("/reports/series-summary/export", exportHandler.HandleSeriesSummaryExport)

	// Series and investor views
	protected.HandleFunc("/series", lookupHandler.HandleSeries)
	protected.HandleFunc("/series/suggest", lookupHandler.HandleSeriesSuggest)
	protected.HandleFunc("/series/rows", lookupHandler.HandleSeriesRows)
	protected.HandleFunc("/investors", lookupHandler.HandleInvestors)
	protected.HandleFunc("/investors/suggest", lookupHandler.HandleInvestorSuggest)
	protected.HandleFunc("/investors/detail", lookupHandler.HandleInvestorDetail)
	protected.HandleFunc("/investors/detail/export", exportHandler.HandleInvestorDetailExport)
	protected.HandleFunc("/preferences", prefsHandler.HandlePreferences)

	// Assistant
	if assistantService != nil {
		var limiter *rate.Limiter
		if cfg.Assistant.RatePerSecond > 0 {
			limiter = rate.NewLimiter(rate.Limit(cfg.Assistant.RatePerSecond), cfg.Assistant.RateBurst)
		}
		assistantHandler := handlers.NewAssistantHandler(assistantService, services.NewSequencer(0), log)
		query := handlers.Timeout(cfg.Assistant.Timeout)(http.HandlerFunc(assistantHandler.HandleQuery))
		protected.Handle("/assistant/query", handlers.RateLimit(limiter)(query))
		protected.HandleFunc("/assistant/runs", assistantHandler.HandleRuns)
	} else {
		protected.Handle("/assistant/query", handlers.Unavailable("assistant is not configured"))
		protected.Handle("/assistant/runs", handlers.Unavailable("assistant is not configured"))
	}

	// Outermost so CORS preflights are answered before routing.
	handler := handlers.RequestID(handlers.Logging(log)(handlers.CORS(cfg.Server.AllowedOrigins)(router)))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		runner := cronrunner.New(log, ctx)
		if _, err := runner.Add("cache-warm", cfg.Cron.CacheWarm, cronrunner.CacheWarmJob(reportingService, cronrunner.DefaultWarmFilters())); err != nil {
			log.Fatal("invalid cache warm schedule", zap.String("spec", cfg.Cron.CacheWarm), zap.Error(err))
		}
		runner.Start()
		defer runner.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}
}
