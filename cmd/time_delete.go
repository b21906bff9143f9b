package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gowfm/storage"
	"gowfm/workflowmax"
)

var (
	timeDeleteID     string
	timeDeleteYes    bool
	timeDeleteDBPath string
)

var timeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a time entry",
	Long: `Destructive time entry removal.

Before deletion, an interactive security prompt requires typing exactly "Y".
Pass --yes to skip the prompt in scripts. With --db the entry is also
removed from the local archive.`,
	Example: `
  # Delete with confirmation
  gowfm time delete --id 12345

  # Delete without prompting, also from the local archive
  gowfm time delete --id 12345 --yes --db ./gowfm.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !timeDeleteYes {
			confirmed, err := confirmPrompt(promptInput, promptOutput, fmt.Sprintf("Delete time entry %q?", timeDeleteID))
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("delete aborted: confirmation was not 'Y'")
			}
		}

		api, err := loadService()
		if err != nil {
			return err
		}
		return runTimeDelete(cmd.Context(), api, cmd.OutOrStdout(), timeDeleteID, timeDeleteDBPath)
	},
}

func runTimeDelete(ctx context.Context, api workflowmax.API, out io.Writer, timeID, dbPath string) error {
	result, err := api.DeleteTimeEntry(ctx, timeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted time entry %s: %s\n", timeID, result)

	if dbPath == "" {
		return nil
	}
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.DeleteTimeEntry(timeID)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(out, "Removed time entry %s from archive: %s\n", timeID, dbPath)
	}
	return nil
}

func init() {
	timeCmd.AddCommand(timeDeleteCmd)

	timeDeleteCmd.Flags().StringVar(&timeDeleteID, "id", "", "Time entry ID")
	timeDeleteCmd.Flags().BoolVar(&timeDeleteYes, "yes", false, "Skip the confirmation prompt")
	timeDeleteCmd.Flags().StringVar(&timeDeleteDBPath, "db", "", "Also remove the entry from this local SQLite archive")

	_ = timeDeleteCmd.MarkFlagRequired("id")
}
