package config

import (
	"strings"
	"testing"
	"time"

	"gowfm/workflowmax"
)

func TestValidateYAMLContent_AppliesDefaults(t *testing.T) {
	t.Parallel()

	content := []byte(`workflowmax:
  api_key: "A1B2C3"
  account_key: "D4E5F6"
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if !cfg.WorkflowMax.Secure {
		t.Fatalf("expected secure endpoint by default")
	}
	if cfg.WorkflowMax.Timeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.WorkflowMax.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected default log level %q", cfg.Log.Level)
	}
}

func TestValidateYAMLContent_RequiresCredentials(t *testing.T) {
	t.Parallel()

	content := []byte(`workflowmax:
  api_key: "A1B2C3"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for missing account key")
	}
	if !strings.Contains(err.Error(), "AccountKey") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "base url",
			content: `workflowmax:
  api_key: "a"
  account_key: "b"
  base_url: "not a url"
`,
			wantErr: "BaseURL",
		},
		{
			name: "log level",
			content: `workflowmax:
  api_key: "a"
  account_key: "b"
log:
  level: "loud"
`,
			wantErr: "Level",
		},
		{
			name: "duplicate staff",
			content: `workflowmax:
  api_key: "a"
  account_key: "b"
permissions:
  staff_ids: ["55918", "55918"]
`,
			wantErr: "duplicate staff id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateYAMLContent([]byte(tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExampleYAMLIsValidOnceKeysAreFilled(t *testing.T) {
	t.Parallel()

	content := strings.Replace(ExampleYAML(), `api_key: ""`, `api_key: "key"`, 1)
	content = strings.Replace(content, `account_key: ""`, `account_key: "account"`, 1)
	if _, err := ValidateYAMLContent([]byte(content)); err != nil {
		t.Fatalf("expected filled example to validate: %v", err)
	}
	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err == nil {
		t.Fatalf("expected unfilled example to fail validation")
	}
}

func TestConfigClientConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{
		WorkflowMax: WorkflowMaxConfig{APIKey: "k", AccountKey: "a", Secure: true, Timeout: time.Second},
	}
	client := cfg.ClientConfig()
	if client.Credentials.APIKey != "k" || client.Credentials.AccountKey != "a" || !client.Secure {
		t.Fatalf("unexpected client config: %+v", client)
	}
	if client.Authorizer != nil {
		t.Fatalf("expected no authorizer without staff restrictions")
	}

	cfg.Permissions = PermissionsConfig{StaffIDs: []string{"55918"}, AllowDelete: true}
	allowList, ok := cfg.ClientConfig().Authorizer.(workflowmax.StaffAllowList)
	if !ok || len(allowList.StaffIDs) != 1 || !allowList.AllowDelete {
		t.Fatalf("unexpected authorizer: %#v", cfg.ClientConfig().Authorizer)
	}
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":           "(not set)",
		"abc":        "***",
		"0123456789": "******6789",
	}
	for input, want := range tests {
		if got := MaskSecret(input); got != want {
			t.Fatalf("MaskSecret(%q): expected %q, got %q", input, want, got)
		}
	}
}
