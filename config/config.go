package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"gowfm/workflowmax"
)

const (
	KeyAPIKey      = "workflowmax.api_key"
	KeyAccountKey  = "workflowmax.account_key"
	KeySecure      = "workflowmax.secure"
	KeyBaseURL     = "workflowmax.base_url"
	KeyTimeout     = "workflowmax.timeout"
	KeyLogLevel    = "log.level"
	KeyStaffIDs    = "permissions.staff_ids"
	KeyAllowDelete = "permissions.allow_delete"

	EnvPrefix = "GOWFM"
)

type Config struct {
	WorkflowMax WorkflowMaxConfig `mapstructure:"workflowmax" validate:"required"`
	Log         LogConfig         `mapstructure:"log"`
	Permissions PermissionsConfig `mapstructure:"permissions"`
}

type WorkflowMaxConfig struct {
	APIKey     string        `mapstructure:"api_key" validate:"required"`
	AccountKey string        `mapstructure:"account_key" validate:"required"`
	Secure     bool          `mapstructure:"secure"`
	BaseURL    string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
}

type PermissionsConfig struct {
	// StaffIDs restricts time operations to these staff members. Empty allows all.
	StaffIDs    []string `mapstructure:"staff_ids"`
	AllowDelete bool     `mapstructure:"allow_delete"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// BindEnv lets GOWFM_WORKFLOWMAX_API_KEY style variables override file values.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{KeyAPIKey, KeyAccountKey, KeySecure, KeyBaseURL, KeyTimeout, KeyLogLevel, KeyAllowDelete} {
		_ = v.BindEnv(key)
	}
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# gowfm configuration
workflowmax:
  api_key: ""
  account_key: ""
  secure: true
  # base_url: "https://api.workflowmax.com/"
  timeout: 30s

log:
  level: "info"

permissions:
  staff_ids: []
  allow_delete: false
`
}

// ClientConfig converts the loaded settings into connector settings.
func (c *Config) ClientConfig() workflowmax.ClientConfig {
	cfg := workflowmax.ClientConfig{
		Credentials: workflowmax.Credentials{
			APIKey:     c.WorkflowMax.APIKey,
			AccountKey: c.WorkflowMax.AccountKey,
		},
		Secure:  c.WorkflowMax.Secure,
		BaseURL: c.WorkflowMax.BaseURL,
		Timeout: c.WorkflowMax.Timeout,
	}
	if len(c.Permissions.StaffIDs) > 0 {
		cfg.Authorizer = workflowmax.StaffAllowList{
			StaffIDs:    c.Permissions.StaffIDs,
			AllowDelete: c.Permissions.AllowDelete,
		}
	}
	return cfg
}

// MaskSecret keeps the last four characters of a credential for display.
func MaskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateStaffIDs(cfg.Permissions.StaffIDs); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySecure, true)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStaffIDs, []string{})
	v.SetDefault(KeyAllowDelete, false)
}

func validateStaffIDs(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("validation failed: permissions.staff_ids[%d] is empty", i)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("validation failed: duplicate staff id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
