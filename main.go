package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"art-collector/config"
	"art-collector/database"
	authapi "art-collector/internal/api/auth"
	usersapi "art-collector/internal/api/users"
	worksapi "art-collector/internal/api/works"
	routes "art-collector/internal/app/http"
	"art-collector/internal/app/http/middleware"
	"art-collector/internal/app/http/session"
	"art-collector/internal/app/http/view"
	"art-collector/internal/infra/mail"
	"art-collector/internal/infra/spreadsheet"
	"art-collector/internal/infra/storage"
	"art-collector/internal/logger"
	"art-collector/internal/repository"
	"art-collector/internal/service"
	"art-collector/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.NewLogger("server")

	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	images, err := storage.NewS3Storage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("image storage")
	}
	mailer := mail.NewSMTPMailer(cfg.SMTP, logger.NewLogger("mailer"))

	pieces := repository.NewPieces(db)
	accountsRepo := repository.NewUsers(db)

	collection := service.NewCollectionService(pieces, images, spreadsheet.NewXLSXWriter(), cfg.ExportDir, logger.NewLogger("collection"))
	accounts := service.NewAccountService(accountsRepo, collection, mailer, logger.NewLogger("accounts"))
	resets := service.NewPasswordResetService(accountsRepo, mailer, cfg.JWTSecret, logger.NewLogger("password-reset"))

	tmpl, err := view.Templates(web.Templates, web.TemplatePattern)
	if err != nil {
		log.Fatal().Err(err).Msg("templates")
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestLogger(log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     strings.Split(cfg.CORSOrigin, ","),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		session.Middleware(cfg.SessionSecret, cfg.Production),
		middleware.ErrorHandler(),
		middleware.LoadUser(accounts),
		middleware.SanitizeForm(),
	)

	routes.RegisterRoutes(r, routes.Handlers{
		Auth:       authapi.NewHandler(accounts, resets, cfg.BaseURL),
		Users:      usersapi.NewHandler(accounts),
		Collection: worksapi.NewHandler(collection),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.MethodOverride(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
