package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Create a new configuration file from the same example template used by "config edit".

The template leaves api_key and account_key empty; fill them in before running
any other command. If a configuration file is already in use, no new file is written.`,
	Example: `
  # Create default config at $HOME/.gowfm.yaml
  gowfm config create

  # Create config at a custom path
  gowfm --configFile ./gowfm.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		return saveDefaultConfig(configPath, cmd.OutOrStdout())
	},
}

func saveDefaultConfig(configPath string, out io.Writer) error {
	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(out, "Config file already exists at: %s\n", configPath)
		return nil
	}

	fmt.Fprintf(out, "New config file created at: %s\n", configPath)
	fmt.Fprintln(out, "Set workflowmax.api_key and workflowmax.account_key before use.")
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
