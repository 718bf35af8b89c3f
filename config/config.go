package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/reasoning"
	"github.com/spf13/viper"
)

// filled at build time
var (
	Version   = "dev"
	Commit    = "unknown"
	Branch    = "unknown"
	BuildDate = "unknown"
)

const EnvPrefix = "FIXFLOW"

type PolicyConfig struct {
	DiagnosisThreshold float64 `mapstructure:"diagnosisThreshold" validate:"gte=0,lte=1"`
	AutoApplyThreshold float64 `mapstructure:"autoApplyThreshold" validate:"gte=0,lte=1"`
}

type SandboxConfig struct {
	APIURL  string        `mapstructure:"apiURL" validate:"required,url"`
	Token   string        `mapstructure:"token"`
	// per command, must stay below the apply lease of a claimed fix
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0,lt=15m"`
}

type EscalationConfig struct {
	Interval    time.Duration `mapstructure:"interval" validate:"gt=0"`
	GracePeriod time.Duration `mapstructure:"gracePeriod" validate:"gte=0"`
}

type Config struct {
	LogLevel           string   `mapstructure:"logLevel"`
	Port               int      `mapstructure:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins     []string `mapstructure:"allowedOrigins"`
	Environment        string   `mapstructure:"environment"`
	ErrorTrackingDSN   string   `mapstructure:"errorTrackingDSN"`
	DisableAutoMigrate bool     `mapstructure:"disableAutoMigrate"`

	Policy     PolicyConfig             `mapstructure:"policy"`
	LLM        reasoning.Config         `mapstructure:"llm"`
	Sandbox    SandboxConfig            `mapstructure:"sandbox"`
	Escalation EscalationConfig         `mapstructure:"escalation"`
	Tracing    monitoring.TracingConfig `mapstructure:"tracing"`
}

// SetDefaults registers every key. AutomaticEnv only resolves keys viper knows about.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("port", 8080)
	v.SetDefault("allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("environment", "dev")
	v.SetDefault("errorTrackingDSN", "")
	v.SetDefault("disableAutoMigrate", false)

	v.SetDefault("policy.diagnosisThreshold", 0.7)
	v.SetDefault("policy.autoApplyThreshold", 0.8)

	v.SetDefault("llm.apiKey", "")
	v.SetDefault("llm.baseURL", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout", 2*time.Minute)
	v.SetDefault("llm.rateLimit", 2.0)
	v.SetDefault("llm.burst", 4)
	v.SetDefault("llm.jsonMode", true)

	v.SetDefault("sandbox.apiURL", "http://localhost:4000")
	v.SetDefault("sandbox.token", "")
	v.SetDefault("sandbox.timeout", 5*time.Minute)

	v.SetDefault("escalation.interval", 5*time.Minute)
	v.SetDefault("escalation.gracePeriod", time.Hour)

	v.SetDefault("tracing.serviceName", "fixflow")
	v.SetDefault("tracing.serviceVersion", Version)
	v.SetDefault("tracing.environment", "dev")
	v.SetDefault("tracing.exporter", "none")
	v.SetDefault("tracing.otlpEndpoint", "")
	v.SetDefault("tracing.otlpInsecure", false)
}

// NewViper returns a viper instance reading FIXFLOW_ prefixed environment variables,
// e.g. FIXFLOW_LLM_APIKEY for llm.apiKey.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadConfigFile merges an optional config file. A missing default file is not an error.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".fixflow")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/fixflow/")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return fmt.Errorf("could not read config file: %w", err)
	}
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Policy.AutoApplyThreshold < cfg.Policy.DiagnosisThreshold {
		return Config{}, fmt.Errorf("invalid config: policy.autoApplyThreshold (%v) must not be lower than policy.diagnosisThreshold (%v)", cfg.Policy.AutoApplyThreshold, cfg.Policy.DiagnosisThreshold)
	}
	return cfg, nil
}
