package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gowfm/config"
	"gowfm/workflowmax"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Credentials
are masked and only their last four characters are shown.`,
	Example: `
  # Show active configuration
  gowfm config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		}
		printConfig(out, cfg)
		return nil
	},
}

func printConfig(out io.Writer, cfg *config.Config) {
	baseURL := cfg.WorkflowMax.BaseURL
	switch {
	case baseURL != "":
	case cfg.WorkflowMax.Secure:
		baseURL = workflowmax.SecureBaseURL + " (default)"
	default:
		baseURL = workflowmax.PlainBaseURL + " (default)"
	}

	staffIDs := "(all)"
	if len(cfg.Permissions.StaffIDs) > 0 {
		staffIDs = strings.Join(cfg.Permissions.StaffIDs, ", ")
	}

	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "workflowmax.api_key: %s\n", config.MaskSecret(cfg.WorkflowMax.APIKey))
	fmt.Fprintf(out, "workflowmax.account_key: %s\n", config.MaskSecret(cfg.WorkflowMax.AccountKey))
	fmt.Fprintf(out, "workflowmax.secure: %t\n", cfg.WorkflowMax.Secure)
	fmt.Fprintf(out, "workflowmax.base_url: %s\n", baseURL)
	fmt.Fprintf(out, "workflowmax.timeout: %s\n", cfg.WorkflowMax.Timeout)
	fmt.Fprintf(out, "log.level: %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "permissions.staff_ids: %s\n", staffIDs)
	fmt.Fprintf(out, "permissions.allow_delete: %t\n", cfg.Permissions.AllowDelete)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
