// ABOUTME: Spreadsheet export CLI command
// ABOUTME: Writes one dataset to an .xlsx workbook on disk
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/harperreed/crmdash/export"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
)

// ExportCommand writes --dataset to --output (default <dataset>.xlsx).
func ExportCommand(s *store.Store, f *stats.Formatter, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(out)
	dataset := fs.String("dataset", "leads", fmt.Sprintf("Dataset to export %v", export.Datasets))
	output := fs.String("output", "", "Output file (default: <dataset>.xlsx)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = *dataset + ".xlsx"
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := export.Workbook(file, *dataset, s, f); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(out, "Exported %s to %s\n", *dataset, path)
	return nil
}
