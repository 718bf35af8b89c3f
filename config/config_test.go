package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should use the defaults", func(t *testing.T) {
		cfg, err := Load(NewViper())
		require.NoError(t, err)

		assert.Equal(t, 0.7, cfg.Policy.DiagnosisThreshold)
		assert.Equal(t, 0.8, cfg.Policy.AutoApplyThreshold)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, time.Hour, cfg.Escalation.GracePeriod)
		assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
		assert.Equal(t, 5*time.Minute, cfg.Sandbox.Timeout)
		assert.Equal(t, "none", cfg.Tracing.Exporter)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	})

	t.Run("should read prefixed environment variables", func(t *testing.T) {
		t.Setenv("FIXFLOW_POLICY_AUTOAPPLYTHRESHOLD", "0.95")
		t.Setenv("FIXFLOW_LLM_MODEL", "llama3")
		t.Setenv("FIXFLOW_ESCALATION_GRACEPERIOD", "30m")
		t.Setenv("FIXFLOW_ALLOWEDORIGINS", "https://a.example,https://b.example")

		cfg, err := Load(NewViper())
		require.NoError(t, err)

		assert.Equal(t, 0.95, cfg.Policy.AutoApplyThreshold)
		assert.Equal(t, "llama3", cfg.LLM.Model)
		assert.Equal(t, 30*time.Minute, cfg.Escalation.GracePeriod)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	})

	t.Run("should reject a threshold out of range", func(t *testing.T) {
		t.Setenv("FIXFLOW_POLICY_DIAGNOSISTHRESHOLD", "1.5")

		_, err := Load(NewViper())
		assert.Error(t, err)
	})

	t.Run("should reject an auto apply threshold below the diagnosis threshold", func(t *testing.T) {
		t.Setenv("FIXFLOW_POLICY_AUTOAPPLYTHRESHOLD", "0.5")

		_, err := Load(NewViper())
		assert.ErrorContains(t, err, "autoApplyThreshold")
	})

	t.Run("should reject a sandbox timeout that outlives the apply lease", func(t *testing.T) {
		t.Setenv("FIXFLOW_SANDBOX_TIMEOUT", "20m")

		_, err := Load(NewViper())
		assert.ErrorContains(t, err, "Timeout")
	})

	t.Run("should merge a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixflow.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 9090\nsandbox:\n  apiURL: http://sandbox:4000\n"), 0o600))

		v := NewViper()
		require.NoError(t, ReadConfigFile(v, path))
		cfg, err := Load(v)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "http://sandbox:4000", cfg.Sandbox.APIURL)
	})

	t.Run("should fail on an explicitly named file that does not exist", func(t *testing.T) {
		assert.Error(t, ReadConfigFile(NewViper(), filepath.Join(t.TempDir(), "missing.yaml")))
	})
}
