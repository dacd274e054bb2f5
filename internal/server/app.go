// Package server wires the skillboard server together: configuration,
// logging, storage, demo data, and the gRPC and HTTP transports, which run
// side by side until the process is asked to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/auth"
	"github.com/dmitrijs2005/skillboard/internal/server/config"
	"github.com/dmitrijs2005/skillboard/internal/server/fixtures"
	gs "github.com/dmitrijs2005/skillboard/internal/server/grpc"
	hs "github.com/dmitrijs2005/skillboard/internal/server/http"
	"github.com/dmitrijs2005/skillboard/internal/server/http/handlers"
	"github.com/dmitrijs2005/skillboard/internal/server/http/middleware"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillboard/internal/server/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// runner is a transport that serves until its context is cancelled.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	accounts *services.AccountService
	profiles *services.ProfileService
	codec    auth.Codec
	servers  []runner
}

// seam for tests
var newRepositoryManager = repomanager.New

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogMode)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	codec, err := auth.NewCodec(auth.Options{
		Kind:      c.TokenCodec,
		SecretKey: c.SecretKey,
		Validity:  c.TokenValidityDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}

	repos, err := newRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, err
	}

	if c.SeedDemoData {
		if err := fixtures.Seed(ctx, repos.Accounts(), repos.Profiles(), logger.With("module", "fixtures")); err != nil {
			_ = repos.Close()
			return nil, err
		}
	}

	app := &App{
		config:   c,
		logger:   logger,
		repos:    repos,
		codec:    codec,
		accounts: services.NewAccountService(repos.Accounts(), codec),
		profiles: services.NewProfileService(repos.Profiles(), codec, c),
	}
	app.servers = []runner{app.grpcServer(), app.httpServer()}

	if c.TokenCodec == "" || c.TokenCodec == auth.CodecPlain {
		logger.Warn(ctx, "plain token codec in use: tokens are unsigned and must not be used in production")
	}

	return app, nil
}

func (app *App) grpcServer() runner {
	return gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts, app.profiles, app.codec)
}

func (app *App) httpServer() runner {
	gin.SetMode(gin.ReleaseMode)
	return hs.NewServer(app.config.EndpointAddrHTTP, app.logger, hs.RouterConfig{
		AuthHandler:    handlers.NewAuthHandler(app.accounts, app.logger),
		ProfileHandler: handlers.NewProfileHandler(app.profiles, app.logger),
		HealthHandler:  handlers.NewHealthHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(app.codec),
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves every transport until a signal arrives, ctx is cancelled or one
// transport fails; the others are then stopped and storage is closed.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range app.servers {
		g.Go(func() error {
			return s.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.repos.Close(); cerr != nil {
		app.logger.Error(ctx, "closing storage", "error", cerr.Error())
	}
	app.logger.Info(ctx, "App stopped")

	return err
}
