package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flixhub/internal/auth"
	"flixhub/internal/catalog"
	"flixhub/internal/identity"
	"flixhub/internal/live"
	"flixhub/internal/works"
	"flixhub/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "config file path (default ./flixhub.yaml or ~/.flixhub/flixhub.yaml)")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		utils.Log().Fatal().Err(err).Msg("load config failed")
	}
	utils.InitLogger(utils.LogOptions{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: "api-server"})
	log := utils.Named("api-server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	history, closer, err := identity.Open(ctx, cfg.Identity)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Identity.Driver).Msg("open identity history failed")
	}
	defer closer.Close()

	ref, err := catalog.LoadReference(cfg.Catalog.Reference)
	if err != nil {
		log.Fatal().Err(err).Msg("load reference data failed")
	}

	svc := works.NewService(works.Options{
		Reference: ref,
		History:   history,
		Loader:    catalog.NewAggregatorFromConfig(cfg.Catalog),
		Origin:    cfg.Server.Origin,
	})

	// Start with the catalog loaded, so a broken source shows up early.
	loadCtx, cancel := context.WithTimeout(ctx, orDefault(cfg.Catalog.Timeout, 30*time.Second))
	n, err := svc.Reload(loadCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("initial catalog load failed")
	}
	log.Info().Int("records", n).Msg("catalog loaded")

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := live.NewHub()
	router.GET("/ws", live.WSHandler(hub, svc, cfg.Search.Debounce))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "identity": cfg.Identity.Driver})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := svc.Stats()
		if stats.Records == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"records":  0,
				"sessions": hub.Count(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"records":  stats.Records,
			"sessions": hub.Count(),
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"catalog":  svc.Stats(),
			"live":     hub.Stats(),
			"identity": cfg.Identity.Driver,
			"origin":   cfg.Server.Origin,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	worksHandler := works.NewHandler(svc)
	worksHandler.OnReload = hub.Reloaded
	worksHandler.RegisterRoutes(router)
	if cfg.Auth.JWTSecret != "" {
		tokens := auth.NewTokenService(cfg.Auth)
		worksHandler.RegisterAdmin(router.Group("/admin", auth.AuthMiddleware(tokens, auth.ScopeAdmin)))
	} else {
		log.Warn().Msg("auth.jwt_secret not set, admin routes disabled")
	}

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Str("addr", cfg.Server.Addr).Msg("HTTP API server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), orDefault(cfg.Server.ShutdownTimeout, 10*time.Second))
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown error")
	}

	wg.Wait()
	log.Info().Msg("server stopped")
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
