package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/humanlystaffing/jobboard-api/config"
	"github.com/humanlystaffing/jobboard-api/internal/adapters/providers"
	"github.com/humanlystaffing/jobboard-api/internal/adapters/refresher"
	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/core"
	"github.com/humanlystaffing/jobboard-api/internal/data"
	"github.com/humanlystaffing/jobboard-api/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Listings     *service.ListingService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	SavedJobs    *service.SavedJobService
	Auth         *service.AuthService

	Aggregator *aggregate.Aggregator
	Cache      core.CacheRepository
	Refresher  *refresher.Runner
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB // nil when no database is configured (demo mode)
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	jobs         *data.JobRepo
	applications *data.ApplicationRepo
	savedJobs    *data.SavedJobRepo
	cache        *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
// Postgres-backed repos stay nil without a database.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		cache: data.NewRedisCacheRepo(redisClient),
	}
	if db != nil {
		repos.jobs = data.NewJobRepo(db)
		repos.applications = data.NewApplicationRepo(db)
		repos.savedJobs = data.NewSavedJobRepo(db)
	}
	return repos
}

// buildConnectors assembles the listing sources in dedup-priority order:
// the platform's own postings first, then external providers. Without a
// database the internal source is replaced by embedded demo data.
func buildConnectors(cfg *config.AppConfig, jobs core.JobRepository, logger *slog.Logger) []aggregate.Connector {
	connectors := make([]aggregate.Connector, 0, 6)

	if jobs != nil {
		connectors = append(connectors, providers.NewInternalConnector(jobs))
	} else {
		logger.Info("no database configured, serving demo postings as the internal source")
		connectors = append(connectors, providers.NewDemoConnector(time.Now))
	}

	prov := cfg.Providers

	if prov.Adzuna.Active() {
		conn, err := providers.NewAdzunaConnector(providers.AdzunaConnectorOptions{
			Config:     prov.Adzuna,
			FetchLimit: prov.FetchLimit,
		})
		if err != nil {
			logger.Warn("adzuna connector disabled", "error", err)
		} else {
			connectors = append(connectors, conn)
		}
	}

	if prov.Remotive.Enabled {
		connectors = append(connectors, providers.NewRemotiveConnector(providers.RemotiveConnectorOptions{
			Config:     prov.Remotive,
			FetchLimit: prov.FetchLimit,
		}))
	}

	if prov.Arbeitnow.Enabled {
		connectors = append(connectors, providers.NewArbeitnowConnector(providers.ArbeitnowConnectorOptions{
			Config:     prov.Arbeitnow,
			FetchLimit: prov.FetchLimit,
		}))
	}

	if prov.USAJobs.Active() {
		conn, err := providers.NewUSAJobsConnector(providers.USAJobsConnectorOptions{
			Config:     prov.USAJobs,
			FetchLimit: prov.FetchLimit,
		})
		if err != nil {
			logger.Warn("usajobs connector disabled", "error", err)
		} else {
			connectors = append(connectors, conn)
		}
	}

	if prov.Custom.Active() {
		conn, err := providers.NewCustomFeedConnector(providers.CustomFeedConnectorOptions{
			Config: prov.Custom,
		})
		if err != nil {
			logger.Warn("custom feed connector disabled", "error", err)
		} else {
			connectors = append(connectors, conn)
		}
	}

	return connectors
}

// NewServices wires the full service graph from shared infrastructure.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	repos := buildRepositories(deps.DB, deps.RedisClient)

	var jobRepo core.JobRepository
	if repos.jobs != nil {
		jobRepo = repos.jobs
	}

	aggregator := aggregate.NewAggregator(aggregate.AggregatorOptions{
		Connectors:   buildConnectors(cfg, jobRepo, logger),
		Normalizer:   aggregate.NewNormalizer(aggregate.NormalizerOptions{Logger: logger}),
		Cache:        repos.cache,
		Logger:       logger,
		TTL:          cfg.Cache.ListingTTL,
		FetchTimeout: cfg.Providers.FetchTimeout,
	})

	listings, err := service.NewListingService(service.ListingServiceOptions{
		Aggregator: aggregator,
		Logger:     logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build listing service: %w", err)
	}

	container := ServiceContainer{
		Listings:   listings,
		Aggregator: aggregator,
		Cache:      repos.cache,
	}

	// Posting, application, and saved-job services need Postgres.
	if repos.jobs != nil {
		container.Jobs, err = service.NewJobService(service.JobServiceOptions{
			Repo:     repos.jobs,
			Listings: listings,
			Logger:   logger,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build job service: %w", err)
		}

		container.Applications, err = service.NewApplicationService(service.ApplicationServiceOptions{
			Repo:   repos.applications,
			Jobs:   repos.jobs,
			Logger: logger,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build application service: %w", err)
		}

		container.SavedJobs, err = service.NewSavedJobService(service.SavedJobServiceOptions{
			Repo:   repos.savedJobs,
			Logger: logger,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build saved job service: %w", err)
		}
	}

	container.Auth = BuildAuthService(AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	if cfg.IsRefresherEnabled() {
		container.Refresher, err = refresher.NewRunner(refresher.RunnerOptions{
			Aggregator: aggregator,
			Interval:   cfg.Cache.RefreshInterval,
			Timeout:    cfg.Providers.FetchTimeout + 30*time.Second,
			PrimeOnRun: true,
			Logger:     logger,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build listing refresher: %w", err)
		}
	}

	return container, nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// startHTTPServerIfEnabled starts the HTTP server if enabled.
func startHTTPServerIfEnabled(cfg *ServiceOrchestrationConfig, logger *slog.Logger) *http.Server {
	if !cfg.Config.IsHTTPServerEnabled() {
		return nil
	}
	return StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		DB:       cfg.DB,
		Logger:   logger,
	})
}
