package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/l3montree-dev/fixflow/shared"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrSandboxUnreachable = errors.New("sandbox is unreachable")

// CommandError is returned if a command ran but exited with a non zero code.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	return msg
}

type execRequest struct {
	Command string `json:"command"`
}

type execFrame struct {
	// stdout, stderr, exit or error
	Type     string `json:"type"`
	Data     string `json:"data,omitempty"`
	ExitCode int    `json:"exitCode"`
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SandboxClient talks to the sandbox runtime. Sessions are created and files are written
// over plain HTTP, commands are streamed over a websocket.
type SandboxClient struct {
	httpClient *http.Client
	dialer     *websocket.Dialer
	token      string
	apiURL     string
	// bounds a whole command stream, the websocket itself has no deadline
	timeout time.Duration
}

func NewSandboxClient(apiURL, token string, timeout time.Duration) *SandboxClient {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: otelhttp.NewTransport(&http.Transport{
			MaxIdleConnsPerHost: 10,
		}),
	}
	wrapHTTPClient(httpClient, bearerAuth(token))

	return &SandboxClient{
		httpClient: httpClient,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		token:   token,
		apiURL:  strings.TrimSuffix(apiURL, "/"),
		timeout: timeout,
	}
}

func (c *SandboxClient) sessionURL(sandboxID string, suffix string) string {
	return fmt.Sprintf("%s/sessions/%s%s", c.apiURL, url.PathEscape(sandboxID), suffix)
}

func (c *SandboxClient) CreateSession(ctx context.Context) (shared.SandboxSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/sessions", nil)
	if err != nil {
		return shared.SandboxSession{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return shared.SandboxSession{}, fmt.Errorf("%w: %w", ErrSandboxUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return shared.SandboxSession{}, fmt.Errorf("could not create sandbox session: unexpected status %d", res.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(res.Body).Decode(&session); err != nil {
		return shared.SandboxSession{}, fmt.Errorf("could not decode sandbox session: %w", err)
	}
	if session.ID == "" {
		return shared.SandboxSession{}, fmt.Errorf("sandbox returned a session without id")
	}
	return shared.SandboxSession{ID: session.ID, URL: session.URL}, nil
}

// WriteFile replaces the file at path inside the sandbox.
func (c *SandboxClient) WriteFile(ctx context.Context, sandboxID string, path string, content string) error {
	u := c.sessionURL(sandboxID, "/files") + "?path=" + url.QueryEscape(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewBufferString(content))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSandboxUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("could not write %s: unexpected status %d: %s", path, res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (c *SandboxClient) websocketURL(sandboxID string) (string, error) {
	u, err := url.Parse(c.sessionURL(sandboxID, "/exec"))
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	}
	return u.String(), nil
}

// RunCommand executes command inside the sandbox and returns the collected stdout.
// Every output chunk is passed to onOutput as it arrives.
func (c *SandboxClient) RunCommand(ctx context.Context, sandboxID string, command string, onOutput func(chunk string)) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	wsURL, err := c.websocketURL(sandboxID)
	if err != nil {
		return "", err
	}

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	conn, res, err := c.dialer.DialContext(ctx, wsURL, header)
	if res != nil && res.Body != nil {
		res.Body.Close()
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSandboxUnreachable, err)
	}
	defer conn.Close()

	// unblock ReadJSON if the caller gives up
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(execRequest{Command: command}); err != nil {
		return "", fmt.Errorf("could not send command: %w", err)
	}

	var stdout, stderr strings.Builder
	for {
		var frame execFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return stdout.String(), ctx.Err()
			}
			return stdout.String(), fmt.Errorf("command stream closed before exit: %w", err)
		}

		switch frame.Type {
		case "stdout":
			stdout.WriteString(frame.Data)
			if onOutput != nil {
				onOutput(frame.Data)
			}
		case "stderr":
			stderr.WriteString(frame.Data)
			if onOutput != nil {
				onOutput(frame.Data)
			}
		case "error":
			return stdout.String(), fmt.Errorf("sandbox could not run %q: %s", command, frame.Data)
		case "exit":
			if frame.ExitCode != 0 {
				return stdout.String(), &CommandError{Command: command, ExitCode: frame.ExitCode, Stderr: stderr.String()}
			}
			return stdout.String(), nil
		default:
			slog.Debug("ignoring unknown sandbox frame", "type", frame.Type)
		}
	}
}
