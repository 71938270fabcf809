package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harborline/portal/identity"
	"github.com/harborline/portal/internal/config"
	"github.com/harborline/portal/internal/metrics"
	"github.com/harborline/portal/organizations"
	orgrepofakes "github.com/harborline/portal/organizations/repofakes"
	"github.com/harborline/portal/principals"
	"github.com/harborline/portal/principals/filerepo"
	"github.com/harborline/portal/principals/repocache"
	"github.com/harborline/portal/server"
	"github.com/harborline/portal/sessions"
	"github.com/harborline/portal/sessions/filestore"
	"github.com/harborline/portal/sessions/redisstore"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New: %w", err)
	}

	logger := newLogger(cfg.GetEnv())
	displayAppname(cfg.GetAppName())

	sessionStore := newSessionStore(cfg)

	principalRepo, err := filerepo.New(cfg.GetPrincipalsFile())
	if err != nil {
		return fmt.Errorf("filerepo.New: %w", err)
	}
	cachedRepo := repocache.New(principalRepo, cfg.GetPrincipalCacheTTL())

	orgRepo, err := buildOrganizationDirectory(principalRepo)
	if err != nil {
		return fmt.Errorf("buildOrganizationDirectory: %w", err)
	}

	authenticator, err := identity.NewAuthenticator(cachedRepo, sessionStore,
		identity.WithLatency(cfg.GetLoginLatency()),
		identity.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("identity.NewAuthenticator: %w", err)
	}

	manager, err := identity.NewManager(authenticator, sessionStore, identity.WithManagerLogger(logger))
	if err != nil {
		return fmt.Errorf("identity.NewManager: %w", err)
	}
	if manager.Restore() {
		metrics.SessionRestores.Inc()
		logger.Info().Str("email", manager.CurrentPrincipal().Email).Msg("session restored")
	}

	srv, err := server.New(cfg, manager, server.Repos{
		Principals:    cachedRepo,
		Organizations: orgRepo,
	}, logger)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: cfg.GetPort(), Handler: srv}
	go listenAndServe(httpServer, logger)
	waitForStopSignal()
	return shutdown(httpServer)
}

func newLogger(env string) zerolog.Logger {
	if env == "DEV" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// newSessionStore picks redis when configured, falling back to the local
// session file otherwise.
func newSessionStore(cfg config.Config) sessions.Store {
	if addr := cfg.GetRedisAddr(); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		return redisstore.New(client, cfg.GetRedisSessionKey())
	}
	return filestore.New(cfg.GetSessionFile())
}

// buildOrganizationDirectory derives the tenant directory from the seeded
// principal listing.
func buildOrganizationDirectory(repo principals.Repo) (organizations.Repo, error) {
	list, err := repo.List(0, 0)
	if err != nil {
		return nil, err
	}
	orgRepo := orgrepofakes.NewFakeOrganizationRepo()
	for _, org := range organizations.FromPrincipals(list) {
		if err := orgRepo.Upsert(org); err != nil {
			return nil, err
		}
	}
	return orgRepo, nil
}

func listenAndServe(server *http.Server, logger zerolog.Logger) {
	logger.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
