package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/fixflow/client"
	"github.com/l3montree-dev/fixflow/config"
	"github.com/l3montree-dev/fixflow/controllers"
	"github.com/l3montree-dev/fixflow/daemons"
	"github.com/l3montree-dev/fixflow/database"
	"github.com/l3montree-dev/fixflow/database/repositories"
	"github.com/l3montree-dev/fixflow/middlewares"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/reasoning"
	"github.com/l3montree-dev/fixflow/router"
	"github.com/l3montree-dev/fixflow/services"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/statemachine"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the review API and the escalation daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	cmd.Flags().Int("port", 8080, "port of the review API")
	return cmd
}

func serve(cfg config.Config) error {
	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), cfg.Tracing)
	if err != nil {
		return fmt.Errorf("could not initialize tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			slog.Warn("could not flush traces", "err", err)
		}
	}()

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		return errors.New("failed to setup database connection")
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			return errors.New("failed to run database migrations")
		}
	} else {
		slog.Info("automatic migrations disabled")
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(statemachine.NewPolicyGate(cfg.Policy.DiagnosisThreshold, cfg.Policy.AutoApplyThreshold)),
		fx.Provide(fx.Annotate(func() (*reasoning.OpenAIClient, error) {
			return reasoning.NewOpenAIClient(cfg.LLM)
		}, fx.As(new(shared.ReasoningBackend)))),
		fx.Provide(fx.Annotate(func() *client.SandboxClient {
			return client.NewSandboxClient(cfg.Sandbox.APIURL, cfg.Sandbox.Token, cfg.Sandbox.Timeout)
		}, fx.As(new(shared.SandboxClient)))),
		fx.Provide(func() *echo.Echo {
			return middlewares.Server(cfg.Tracing.ServiceName, cfg.AllowedOrigins)
		}),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.APIV1Router) {}),
		fx.Invoke(func(router.ProjectRouter) {}),
		fx.Invoke(func(router.FixRouter) {}),
		fx.Invoke(func(lc fx.Lifecycle, server *echo.Echo) {
			registerServer(lc, server, cfg.Port)
		}),
	)
	app.Run()
	return app.Err()
}

func registerServer(lc fx.Lifecycle, server *echo.Echo, port int) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				slog.Info("starting review api", "port", port)
				if err := server.Start(fmt.Sprintf(":%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					monitoring.Alert("review api stopped unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}

func initSentry(cfg config.Config) {
	environment := cfg.Environment
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.ErrorTrackingDSN,
		Environment:      environment,
		Release:          config.Version,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("failed to init error tracking", "err", err)
	}
}
