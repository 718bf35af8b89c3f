package services

import (
	"github.com/l3montree-dev/fixflow/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewDiagnosisService, fx.As(new(shared.DiagnosisService)))),
	fx.Provide(fx.Annotate(NewFixGeneratorService, fx.As(new(shared.FixGenerator)))),
	fx.Provide(fx.Annotate(NewFixExecutorService, fx.As(new(shared.FixExecutor)))),
	fx.Provide(fx.Annotate(NewApprovalService, fx.As(new(shared.ApprovalService)))),
	fx.Provide(fx.Annotate(NewGenerationService, fx.As(new(shared.GenerationService)))),
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
	fx.Provide(fx.Annotate(NewLLMAgentLoop, fx.As(new(shared.AgentLoop)))),
)
