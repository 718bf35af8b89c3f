package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/shared"
)

const agentSystemPrompt = `You are a code generation agent working inside a fresh sandbox with a web application template.
Implement the request of the user. Respond with a single JSON object and nothing else:
{
  "title": "<short title of the result>",
  "summary": "<what you built, for the user>",
  "files": [{"path": "<path relative to the project root>", "content": "<complete file content>"}],
  "commands": ["<shell command to run after the files were written>", ...]
}`

type agentInput struct {
	Project string `json:"project"`
	Prompt  string `json:"prompt"`
}

type agentOutput struct {
	Title    string            `json:"title"`
	Summary  string            `json:"summary"`
	Files    []dtos.FileChange `json:"files"`
	Commands []string          `json:"commands"`
}

// llmAgentLoop is the default agent loop. It asks the reasoning backend for the complete
// set of files and materializes them inside a new sandbox session.
type llmAgentLoop struct {
	reasoningBackend shared.ReasoningBackend
	sandboxClient    shared.SandboxClient
}

var _ shared.AgentLoop = (*llmAgentLoop)(nil)

func NewLLMAgentLoop(reasoningBackend shared.ReasoningBackend, sandboxClient shared.SandboxClient) *llmAgentLoop {
	return &llmAgentLoop{
		reasoningBackend: reasoningBackend,
		sandboxClient:    sandboxClient,
	}
}

// Run returns the sandbox of the attempt even if it fails afterwards, so that fixes can target it.
func (a *llmAgentLoop) Run(ctx context.Context, project models.Project, prompt string) (dtos.AgentResult, error) {
	ctx, span := monitoring.StartSpan(ctx, "agent.run")
	defer span.End()

	session, err := a.sandboxClient.CreateSession(ctx)
	if err != nil {
		return dtos.AgentResult{}, fmt.Errorf("could not create sandbox session: %w", err)
	}
	result := dtos.AgentResult{SandboxID: session.ID, SandboxURL: session.URL}

	input, err := json.Marshal(agentInput{Project: project.Name, Prompt: prompt})
	if err != nil {
		return result, err
	}

	output, err := a.reasoningBackend.Run(ctx, agentSystemPrompt, string(input))
	if err != nil {
		return result, fmt.Errorf("reasoning backend failed: %w", err)
	}

	var parsed agentOutput
	if err := decodeLLMOutput(output, &parsed); err != nil {
		return result, err
	}

	files := make(map[string]string, len(parsed.Files))
	for _, file := range parsed.Files {
		if file.Path == "" {
			continue
		}
		if err := a.sandboxClient.WriteFile(ctx, session.ID, file.Path, file.Content); err != nil {
			return result, fmt.Errorf("could not write %s: %w", file.Path, err)
		}
		files[file.Path] = file.Content
	}

	for _, command := range parsed.Commands {
		if _, err := a.sandboxClient.RunCommand(ctx, session.ID, command, func(chunk string) {
			slog.Debug("sandbox output", "sandboxID", session.ID, "chunk", chunk)
		}); err != nil {
			return result, fmt.Errorf("command %q failed: %w", command, err)
		}
	}

	result.Title = parsed.Title
	result.Summary = parsed.Summary
	result.Files = files
	return result, nil
}
