package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gowfm configuration file values.",
	Long: `Create, edit, display, and delete the gowfm configuration file.

The configuration stores the WorkflowMax connection and optional restrictions:
- workflowmax.api_key / workflowmax.account_key
- workflowmax.secure / workflowmax.base_url / workflowmax.timeout
- log.level
- permissions.staff_ids / permissions.allow_delete`,
	Example: `
  # Create default config in $HOME/.gowfm.yaml
  gowfm config create

  # Show active config and source file
  gowfm config show

  # Open active config in editor (creates example if missing)
  gowfm config edit

  # Delete active config file
  gowfm config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
