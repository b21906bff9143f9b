/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gowfm/config"
	"gowfm/internal/logging"
	"gowfm/workflowmax"
)

var (
	cfgFile  string
	logLevel string
)

// newService builds the connector bundle from validated configuration.
// Tests replace it to point commands at a fake API.
var newService = func(cfg *config.Config) (workflowmax.API, error) {
	return workflowmax.NewService(cfg.ClientConfig())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gowfm",
	Short: "List staff and jobs, and manage time entries in WorkflowMax.",
	Long: `
**********************************************
*                 GO WFM                     *
**********************************************

This CLI talks to the WorkflowMax XML API. It lists staff and jobs, lists,
adds, updates and deletes time entries, exports results to CSV or Excel and
can archive fetched time entries into a local SQLite database.

Credentials (API key and account key) are read from the config file or from
GOWFM_WORKFLOWMAX_API_KEY / GOWFM_WORKFLOWMAX_ACCOUNT_KEY.
`,
	Example: `
  # Create configuration file
  gowfm config create

  # List staff members
  gowfm staff list

  # List trackable jobs and tasks of one staff member
  gowfm jobs list --staff 55918

  # List time entries of the current month and export them to Excel
  gowfm time list --staff 55918 --output ./times.xlsx

  # Add one hour to a task
  gowfm time add --job JOB00003 --task 6487447 --staff 55918 --date 20121218 --minutes 60 --note "Test note"

  # Archive one month of time entries into SQLite
  gowfm time archive --staff 55918 --from 20121201 --to 20121231 --db ./gowfm.db
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.gowfm.yaml, then ./.gowfm.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override: trace|debug|info|warn|error")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".gowfm" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gowfm")
	}

	config.BindEnv(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: gowfm config create")
	}
}

// loadService validates the active configuration, applies the log level and
// returns the WorkflowMax connectors.
func loadService() (workflowmax.API, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if strings.TrimSpace(logLevel) != "" {
		level = logLevel
	}
	if err := logging.Init(level); err != nil {
		return nil, err
	}

	return newService(cfg)
}
