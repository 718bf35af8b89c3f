package repositories

import (
	"github.com/l3montree-dev/fixflow/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewMessageRepository, fx.As(new(shared.MessageRepository)))),
	fx.Provide(fx.Annotate(NewErrorLogRepository, fx.As(new(shared.ErrorLogRepository)))),
	fx.Provide(fx.Annotate(NewProposedFixRepository, fx.As(new(shared.ProposedFixRepository)))),
)
