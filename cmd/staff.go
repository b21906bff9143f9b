package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"gowfm/output"
	"gowfm/workflowmax"
)

var staffListTarget exportTarget

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Query WorkflowMax staff members.",
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all staff members of the account",
	Example: `
  # Print staff members
  gowfm staff list

  # Export staff members to Excel
  gowfm staff list --output ./staff.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := loadService()
		if err != nil {
			return err
		}
		return runStaffList(cmd.Context(), api, cmd.OutOrStdout(), staffListTarget)
	},
}

func runStaffList(ctx context.Context, api workflowmax.API, out io.Writer, target exportTarget) error {
	staff, err := api.ListStaff(ctx)
	if err != nil {
		return err
	}
	return target.write(out, output.StaffTable(staff))
}

func init() {
	rootCmd.AddCommand(staffCmd)
	staffCmd.AddCommand(staffListCmd)

	staffListTarget.bindFlags(staffListCmd)
}
