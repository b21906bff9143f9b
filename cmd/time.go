package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gowfm/internal/timeutil"
)

var nowFunc = time.Now

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "List, add, update, delete and archive time entries.",
	Long: `Manage WorkflowMax time entries.

Dates use the WorkflowMax day format YYYYMMDD.`,
}

// resolveDayRange applies the current month as default for empty bounds and
// checks both bounds are valid days in order.
func resolveDayRange(fromValue, toValue string, now time.Time) (string, string, error) {
	monthStart, monthEnd := timeutil.MonthRange(now)

	from := monthStart
	if strings.TrimSpace(fromValue) != "" {
		parsed, err := timeutil.ParseCompactDay(fromValue)
		if err != nil {
			return "", "", fmt.Errorf("invalid --from: %w", err)
		}
		from = parsed
	}

	to := monthEnd
	if strings.TrimSpace(toValue) != "" {
		parsed, err := timeutil.ParseCompactDay(toValue)
		if err != nil {
			return "", "", fmt.Errorf("invalid --to: %w", err)
		}
		to = parsed
	}

	if timeutil.StartOfDay(to).Before(timeutil.StartOfDay(from)) {
		return "", "", fmt.Errorf("invalid range: --from %s is after --to %s", timeutil.FormatCompactDay(from), timeutil.FormatCompactDay(to))
	}
	return timeutil.FormatCompactDay(from), timeutil.FormatCompactDay(to), nil
}

func init() {
	rootCmd.AddCommand(timeCmd)
}
