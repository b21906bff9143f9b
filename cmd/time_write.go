package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gowfm/internal/timeutil"
	"gowfm/output"
	"gowfm/workflowmax"
)

var (
	timeAddInput    workflowmax.TimesheetInput
	timeUpdateID    string
	timeUpdateInput workflowmax.TimesheetInput
)

var timeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a time entry to a job task",
	Long: `Add a time entry. The task must not be completed.

--date defaults to today.`,
	Example: `
  gowfm time add --job JOB00003 --task 6487447 --staff 55918 --date 20121218 --minutes 60 --note "Test note"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadService()
		if err != nil {
			return err
		}
		return runTimeAdd(cmd.Context(), api, cmd.OutOrStdout(), timeAddInput)
	},
}

var timeUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the values of an existing time entry",
	Long: `Update an existing time entry. All values are sent, so pass every flag
even when only one value changes.`,
	Example: `
  gowfm time update --id 12345 --job JOB00003 --task 6487447 --staff 55918 --date 20121218 --minutes 90 --note "Longer session"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadService()
		if err != nil {
			return err
		}
		return runTimeUpdate(cmd.Context(), api, cmd.OutOrStdout(), timeUpdateID, timeUpdateInput)
	},
}

func runTimeAdd(ctx context.Context, api workflowmax.API, out io.Writer, in workflowmax.TimesheetInput) error {
	entry, err := api.AddTimeEntry(ctx, withDefaultDate(in))
	if err != nil {
		return err
	}
	return output.Render(out, output.TimeEntriesTable([]workflowmax.TimeEntry{entry}))
}

func runTimeUpdate(ctx context.Context, api workflowmax.API, out io.Writer, timeID string, in workflowmax.TimesheetInput) error {
	entry, err := api.UpdateTimeEntry(ctx, timeID, withDefaultDate(in))
	if err != nil {
		return err
	}
	return output.Render(out, output.TimeEntriesTable([]workflowmax.TimeEntry{entry}))
}

func withDefaultDate(in workflowmax.TimesheetInput) workflowmax.TimesheetInput {
	if strings.TrimSpace(in.Date) == "" {
		in.Date = timeutil.FormatCompactDay(nowFunc())
	}
	return in
}

func bindTimesheetFlags(cmd *cobra.Command, in *workflowmax.TimesheetInput) {
	cmd.Flags().StringVar(&in.JobID, "job", "", "Job ID (e.g. JOB00003)")
	cmd.Flags().StringVar(&in.TaskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&in.StaffID, "staff", "", "Staff member ID")
	cmd.Flags().StringVar(&in.Date, "date", "", "Day YYYYMMDD (default: today)")
	cmd.Flags().IntVar(&in.Minutes, "minutes", 0, "Duration in minutes")
	cmd.Flags().StringVar(&in.Note, "note", "", "Note text")
}

func init() {
	timeCmd.AddCommand(timeAddCmd)
	timeCmd.AddCommand(timeUpdateCmd)

	bindTimesheetFlags(timeAddCmd, &timeAddInput)
	bindTimesheetFlags(timeUpdateCmd, &timeUpdateInput)
	timeUpdateCmd.Flags().StringVar(&timeUpdateID, "id", "", "Time entry ID")

	_ = timeUpdateCmd.MarkFlagRequired("id")
}
