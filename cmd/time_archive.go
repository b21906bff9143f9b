package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gowfm/output"
	"gowfm/storage"
	"gowfm/workflowmax"
)

const defaultDBPath = "./gowfm.db"

var (
	timeArchiveStaffID string
	timeArchiveFrom    string
	timeArchiveTo      string
	timeArchiveDBPath  string

	timeArchivedStaffID string
	timeArchivedDBPath  string
	timeArchivedTarget  exportTarget
)

var timeArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Fetch time entries and store them in a local SQLite database",
	Long: `Fetch the time entries of one staff member and upsert them into SQLite.

Entries are keyed by their WorkflowMax ID, so archiving the same range again
refreshes existing rows instead of duplicating them. Without --from and --to
the current month is used.`,
	Example: `
  gowfm time archive --staff 55918 --from 20121201 --to 20121231 --db ./gowfm.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadService()
		if err != nil {
			return err
		}
		return runTimeArchive(cmd.Context(), api, cmd.OutOrStdout(), timeArchiveStaffID, timeArchiveFrom, timeArchiveTo, timeArchiveDBPath)
	},
}

var timeArchivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "List time entries stored in the local SQLite database",
	Example: `
  # All archived entries
  gowfm time archived --db ./gowfm.db

  # Archived entries of one staff member as Excel
  gowfm time archived --db ./gowfm.db --staff 55918 --output ./archived.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimeArchived(cmd.OutOrStdout(), timeArchivedDBPath, timeArchivedStaffID, timeArchivedTarget)
	},
}

func runTimeArchive(ctx context.Context, api workflowmax.API, out io.Writer, staffID, fromValue, toValue, dbPath string) error {
	from, to, err := resolveDayRange(fromValue, toValue, nowFunc())
	if err != nil {
		return err
	}

	entries, err := api.ListTimeForStaff(ctx, staffID, from, to)
	if err != nil {
		return err
	}

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stored, err := store.UpsertTimeEntries(entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Archive completed. Entries: %d, Range: %s-%s, DB: %s\n", stored, from, to, dbPath)
	return nil
}

func runTimeArchived(out io.Writer, dbPath, staffID string, target exportTarget) error {
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListTimeEntries(staffID)
	if err != nil {
		return err
	}
	return target.write(out, output.TimeEntriesTable(entries))
}

func init() {
	timeCmd.AddCommand(timeArchiveCmd)
	timeCmd.AddCommand(timeArchivedCmd)

	timeArchiveCmd.Flags().StringVar(&timeArchiveStaffID, "staff", "", "Staff member ID")
	timeArchiveCmd.Flags().StringVar(&timeArchiveFrom, "from", "", "First day YYYYMMDD (default: first day of current month)")
	timeArchiveCmd.Flags().StringVar(&timeArchiveTo, "to", "", "Last day YYYYMMDD (default: last day of current month)")
	timeArchiveCmd.Flags().StringVar(&timeArchiveDBPath, "db", defaultDBPath, "Path to local SQLite database")
	_ = timeArchiveCmd.MarkFlagRequired("staff")

	timeArchivedCmd.Flags().StringVar(&timeArchivedStaffID, "staff", "", "Only entries of this staff member")
	timeArchivedCmd.Flags().StringVar(&timeArchivedDBPath, "db", defaultDBPath, "Path to local SQLite database")
	timeArchivedTarget.bindFlags(timeArchivedCmd)
}
