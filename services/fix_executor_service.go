package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/shared"
	"go.opentelemetry.io/otel/attribute"
)

const ErrMsgSandboxIDRequired = "Sandbox ID required for fix execution"

type fixExecutorService struct {
	sandboxClient shared.SandboxClient
}

var _ shared.FixExecutor = (*fixExecutorService)(nil)

func NewFixExecutorService(sandboxClient shared.SandboxClient) *fixExecutorService {
	return &fixExecutorService{
		sandboxClient: sandboxClient,
	}
}

// Execute applies the payload against the sandbox. Every failure, including a panic of the
// sandbox client, is reported through the result. Steps after the first failure are skipped.
func (s *fixExecutorService) Execute(ctx context.Context, payload dtos.FixPayload, sandboxID string) (result dtos.ExecutionResult) {
	if sandboxID == "" {
		return dtos.ExecutionResult{Success: false, Error: ErrMsgSandboxIDRequired}
	}
	if payload == nil {
		return dtos.ExecutionResult{Success: false, Error: "fix does not contain a payload"}
	}

	ctx, span := monitoring.StartSpan(ctx, "fixexecutor.execute", attribute.String("fixType", string(payload.Type())), attribute.String("sandboxID", sandboxID))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic while executing fix", "panic", r, "sandboxID", sandboxID)
			result = dtos.ExecutionResult{Success: false, Error: fmt.Sprintf("fix execution panicked: %v", r)}
		}
		outcome := "success"
		if !result.Success {
			outcome = "failure"
		}
		monitoring.FixExecutionTotal.WithLabelValues(string(payload.Type()), outcome).Inc()
	}()

	var err error
	switch p := payload.(type) {
	case dtos.CommandFix:
		err = s.runCommands(ctx, sandboxID, p.Commands)
	case dtos.FileChangeFix:
		err = s.writeFiles(ctx, sandboxID, p.Files)
	case dtos.MultiStepFix:
		// no file is touched if any command failed
		if err = s.runCommands(ctx, sandboxID, p.Commands); err == nil {
			err = s.writeFiles(ctx, sandboxID, p.Files)
		}
	default:
		err = fmt.Errorf("unsupported fix type %q", payload.Type())
	}

	if err != nil {
		span.RecordError(err)
		slog.Warn("fix execution failed", "err", err, "sandboxID", sandboxID, "fixType", payload.Type())
		return dtos.ExecutionResult{Success: false, Error: err.Error()}
	}
	return dtos.ExecutionResult{Success: true}
}

func (s *fixExecutorService) runCommands(ctx context.Context, sandboxID string, commands []string) error {
	for i, command := range commands {
		if _, err := s.sandboxClient.RunCommand(ctx, sandboxID, command, nil); err != nil {
			return fmt.Errorf("command %d (%q) failed: %w", i+1, command, err)
		}
		slog.Debug("fix command executed", "sandboxID", sandboxID, "command", command)
	}
	return nil
}

func (s *fixExecutorService) writeFiles(ctx context.Context, sandboxID string, files []dtos.FileChange) error {
	for i, file := range files {
		if err := s.sandboxClient.WriteFile(ctx, sandboxID, file.Path, file.Content); err != nil {
			return fmt.Errorf("file change %d (%s) failed: %w", i+1, file.Path, err)
		}
		slog.Debug("fix file written", "sandboxID", sandboxID, "path", file.Path)
	}
	return nil
}
