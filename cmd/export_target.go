package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gowfm/output"
)

// exportTarget selects where a listing goes. An empty Path prints an aligned
// table to the command output instead of writing a file.
type exportTarget struct {
	Path   string
	Format string
}

func (e *exportTarget) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&e.Path, "output", "o", "", "Write results to this file instead of stdout")
	cmd.Flags().StringVarP(&e.Format, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
}

func (e exportTarget) write(out io.Writer, table output.Table) error {
	if strings.TrimSpace(e.Path) == "" {
		return output.Render(out, table)
	}

	format := e.Format
	if strings.TrimSpace(format) == "" {
		format = output.DetectFormat(e.Path)
	}

	writer, err := output.WriterForFormat(format)
	if err != nil {
		return err
	}
	if err := writer.Write(e.Path, table); err != nil {
		return err
	}
	fmt.Fprintf(out, "Export completed. Rows: %d, Format: %s, File: %s\n", len(table.Rows), format, e.Path)
	return nil
}
