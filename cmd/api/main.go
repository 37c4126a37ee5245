package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/uf-sase-hacks/registration-api/internal/adapters/httpapi"
	memadminroster "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/adminroster"
	memfaqcache "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/faqcache"
	memprofilerepo "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/profilerepo"
	memregistrationrepo "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/registrationrepo"
	memresumestore "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/resumestore"
	"github.com/uf-sase-hacks/registration-api/internal/adapters/notion"
	postgres "github.com/uf-sase-hacks/registration-api/internal/adapters/postgres"
	pgadminroster "github.com/uf-sase-hacks/registration-api/internal/adapters/postgres/adminroster"
	pgprofilerepo "github.com/uf-sase-hacks/registration-api/internal/adapters/postgres/profilerepo"
	pgregistrationrepo "github.com/uf-sase-hacks/registration-api/internal/adapters/postgres/registrationrepo"
	"github.com/uf-sase-hacks/registration-api/internal/adapters/rediscache"
	s3resumestore "github.com/uf-sase-hacks/registration-api/internal/adapters/s3/resumestore"
	"github.com/uf-sase-hacks/registration-api/internal/app/admin"
	"github.com/uf-sase-hacks/registration-api/internal/app/faq"
	"github.com/uf-sase-hacks/registration-api/internal/app/registration"
	"github.com/uf-sase-hacks/registration-api/internal/domain"
	"github.com/uf-sase-hacks/registration-api/internal/platform/auth/tokenverifier"
	platformclock "github.com/uf-sase-hacks/registration-api/internal/platform/clock"
	"github.com/uf-sase-hacks/registration-api/internal/platform/config"
	adminrosterport "github.com/uf-sase-hacks/registration-api/internal/ports/out/adminroster"
	faqcacheport "github.com/uf-sase-hacks/registration-api/internal/ports/out/faqcache"
	faqsourceport "github.com/uf-sase-hacks/registration-api/internal/ports/out/faqsource"
	profilerepoport "github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
	registrationrepoport "github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
	resumestoreport "github.com/uf-sase-hacks/registration-api/internal/ports/out/resumestore"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	clk := platformclock.NewSystemClock()

	// Auth configuration:
	// - Production: require JWT_* env vars and enforce bearer auth
	// - Local dev: set AUTH_MODE=dev to bypass verification and use X-Debug-Subject
	var authMW func(http.Handler) http.Handler
	switch cfg.AuthMode {
	case "dev":
		authMW = httpapi.NewDevAuthMiddleware(cfg.DevSubject)
	default:
		jwtCfg, err := config.LoadJWTConfigFromEnv()
		if err != nil {
			logger.Fatal("invalid auth config", zap.Error(err))
		}
		authMW = httpapi.NewAuthMiddleware(tokenverifier.New(jwtCfg, clk))
	}

	ctx := context.Background()

	var (
		profileRepo profilerepoport.Repository
		regRepo     registrationrepoport.Repository
		roster      adminrosterport.Roster
		cleanup     func()
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			logger.Fatal("invalid postgres config", zap.Error(err))
		}
		cleanup = pool.Close

		profileRepo = pgprofilerepo.NewRepo(pool)
		regRepo = pgregistrationrepo.NewRepo(pool)
		roster = pgadminroster.NewRoster(pool)
	default:
		memProfiles := memprofilerepo.NewRepo()
		profileRepo = memProfiles
		regRepo = memregistrationrepo.NewRepo(memProfiles)
		roster = memadminroster.NewRoster(devAdmins()...)
	}
	if cleanup != nil {
		defer cleanup()
	}

	var resumes resumestoreport.Store
	switch cfg.ResumeBackend {
	case "s3":
		store, err := s3resumestore.NewStore(s3resumestore.Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			Bucket:    cfg.S3.Bucket,
		})
		if err != nil {
			logger.Fatal("invalid s3 config", zap.Error(err))
		}
		if err := store.EnsureBucket(ctx); err != nil {
			logger.Fatal("ensure resume bucket", zap.Error(err))
		}
		resumes = store
	default:
		resumes = memresumestore.NewStore()
	}

	var faqCache faqcacheport.Cache
	if cfg.RedisAddr != "" {
		rc := rediscache.NewCache(rediscache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, running without faq cache", zap.Error(err))
		} else {
			faqCache = rc
			defer func() { _ = rc.Close() }()
		}
	} else {
		faqCache = memfaqcache.NewCache(clk)
	}

	var faqSource faqsourceport.Source
	if cfg.NotionAPIKey != "" && cfg.NotionDatabaseID != "" {
		faqSource = notion.NewSource(notion.Config{
			APIKey:     cfg.NotionAPIKey,
			DatabaseID: cfg.NotionDatabaseID,
		})
	}

	regSvc := registration.NewService(profileRepo, regRepo, resumes, clk)
	adminSvc := admin.NewService(roster, profileRepo, regRepo, resumes, clk)
	faqSvc := faq.NewService(faqSource, faqCache, logger)
	faqSvc.TTL = cfg.FAQCacheTTL

	api := httpapi.NewServer(regSvc, adminSvc, faqSvc, logger)
	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		AuthMiddleware: authMW,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
		Metrics:        httpapi.NewMetrics(),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-runCtx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// devAdmins seeds the in-memory roster from DEV_ADMIN_IDS so the admin
// endpoints are usable without Postgres.
func devAdmins() []domain.AccountID {
	raw := os.Getenv("DEV_ADMIN_IDS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]domain.AccountID, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, domain.AccountID(p))
		}
	}
	return out
}
