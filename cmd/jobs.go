package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"gowfm/output"
	"gowfm/workflowmax"
)

var (
	jobsStaffID  string
	jobsAllTasks bool
	jobsTarget   exportTarget
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Query WorkflowMax jobs and their tasks.",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs assigned to a staff member",
	Long: `List the jobs assigned to one staff member with one row per task.

By default completed tasks are hidden since time cannot be booked on them.
Use --all-tasks to include them.`,
	Example: `
  # Trackable tasks of staff member 55918
  gowfm jobs list --staff 55918

  # All tasks, exported to CSV
  gowfm jobs list --staff 55918 --all-tasks --output ./jobs.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadService()
		if err != nil {
			return err
		}
		return runJobsList(cmd.Context(), api, cmd.OutOrStdout(), jobsStaffID, jobsAllTasks, jobsTarget)
	},
}

func runJobsList(ctx context.Context, api workflowmax.API, out io.Writer, staffID string, allTasks bool, target exportTarget) error {
	var opts []workflowmax.JobOption
	if allTasks {
		opts = append(opts, workflowmax.WithAllTasks())
	}

	jobs, err := api.ListJobsForStaff(ctx, staffID, opts...)
	if err != nil {
		return err
	}
	return target.write(out, output.JobsTable(jobs))
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)

	jobsListCmd.Flags().StringVar(&jobsStaffID, "staff", "", "Staff member ID")
	jobsListCmd.Flags().BoolVar(&jobsAllTasks, "all-tasks", false, "Include completed tasks")
	jobsTarget.bindFlags(jobsListCmd)

	_ = jobsListCmd.MarkFlagRequired("staff")
}
