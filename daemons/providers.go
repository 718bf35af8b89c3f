package daemons

import (
	"context"

	"github.com/l3montree-dev/fixflow/config"
	"go.uber.org/fx"
)

func escalationConfig(cfg config.Config) config.EscalationConfig {
	return cfg.Escalation
}

func registerLifecycle(lc fx.Lifecycle, runner *DaemonRunner) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			runner.Stop()
			return nil
		},
	})
}

var Module = fx.Module("daemons",
	fx.Provide(escalationConfig),
	fx.Provide(NewDaemonRunner),
	fx.Invoke(registerLifecycle),
)
