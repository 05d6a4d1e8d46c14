package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	"github.com/BruksfildServices01/barberrock-web/internal/config"
	dbpkg "github.com/BruksfildServices01/barberrock-web/internal/db"
	"github.com/BruksfildServices01/barberrock-web/internal/infra/backend"
	"github.com/BruksfildServices01/barberrock-web/internal/observability"
	"github.com/BruksfildServices01/barberrock-web/internal/routes"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	"github.com/BruksfildServices01/barberrock-web/internal/web"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	observability.InitLogger(cfg.AppEnv)
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	var (
		store   session.Store
		sweeper *cron.Cron
	)
	switch cfg.SessionBackend {
	case "redis":
		client, err := dbpkg.NewRedis(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		store = session.NewRedisStore(client, cfg.SessionTTL)
	default:
		mem := session.NewMemoryStore(cfg.SessionTTL)
		sweeper = cron.New()
		if _, err := sweeper.AddFunc("@every 10m", func() {
			if n := mem.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Msg("expired sessions swept")
			}
		}); err != nil {
			log.Fatal().Err(err).Msg("failed to schedule session sweep")
		}
		sweeper.Start()
		store = mem
	}

	auditDispatcher := audit.NewDispatcher(audit.New(log.Logger))

	api := backend.NewClient(cfg.APIURL, cfg.MediaURL, cfg.APITimeout)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, api, store, auditDispatcher, cfg)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("api_url", cfg.APIURL).
			Str("session_backend", cfg.SessionBackend).
			Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if sweeper != nil {
		<-sweeper.Stop().Done()
	}
	auditDispatcher.Close()
}
