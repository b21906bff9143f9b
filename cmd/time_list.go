package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gowfm/output"
	"gowfm/workflowmax"
)

type timeListOptions struct {
	StaffID string
	From    string
	To      string
	Summary string
	Target  exportTarget
}

var timeListOpts timeListOptions

var timeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries of a staff member",
	Long: `List the time entries of one staff member between two days (inclusive).

Without --from and --to the current month is used.

Summary modes:
- none: one row per time entry (default)
- daily: per-day totals of minutes, billable minutes and entry count`,
	Example: `
  # Current month
  gowfm time list --staff 55918

  # Explicit range exported to Excel
  gowfm time list --staff 55918 --from 20121201 --to 20121231 --output ./times.xlsx

  # Daily totals as CSV
  gowfm time list --staff 55918 --summary daily --output ./daily.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadService()
		if err != nil {
			return err
		}
		return runTimeList(cmd.Context(), api, cmd.OutOrStdout(), timeListOpts)
	},
}

func runTimeList(ctx context.Context, api workflowmax.API, out io.Writer, opts timeListOptions) error {
	from, to, err := resolveDayRange(opts.From, opts.To, nowFunc())
	if err != nil {
		return err
	}

	entries, err := api.ListTimeForStaff(ctx, opts.StaffID, from, to)
	if err != nil {
		return err
	}

	switch strings.TrimSpace(strings.ToLower(opts.Summary)) {
	case "", "none":
		return opts.Target.write(out, output.TimeEntriesTable(entries))
	case "daily":
		return opts.Target.write(out, output.DailySummaryTable(output.BuildDailySummaries(entries)))
	default:
		return fmt.Errorf("unsupported summary mode: %s (supported: none, daily)", opts.Summary)
	}
}

func init() {
	timeCmd.AddCommand(timeListCmd)

	timeListCmd.Flags().StringVar(&timeListOpts.StaffID, "staff", "", "Staff member ID")
	timeListCmd.Flags().StringVar(&timeListOpts.From, "from", "", "First day YYYYMMDD (default: first day of current month)")
	timeListCmd.Flags().StringVar(&timeListOpts.To, "to", "", "Last day YYYYMMDD (default: last day of current month)")
	timeListCmd.Flags().StringVar(&timeListOpts.Summary, "summary", "none", "Summary mode: none|daily")
	timeListOpts.Target.bindFlags(timeListCmd)

	_ = timeListCmd.MarkFlagRequired("staff")
}
