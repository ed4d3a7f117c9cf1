// ABOUTME: Configuration CLI commands
// ABOUTME: Shows the effective configuration and writes a starter config file
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harperreed/crmdash/config"
)

// ConfigShowCommand prints the effective configuration as JSON.
func ConfigShowCommand(cfg *config.Config, out io.Writer) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, _ = fmt.Fprintf(out, "# %s\n%s\n", config.Path(), data)
	return nil
}

// ConfigInitCommand writes the defaults to path, or to the XDG location when
// path is empty.
func ConfigInitCommand(path string, out io.Writer) error {
	if path == "" {
		path = config.Path()
	}
	if err := config.DefaultConfig().SaveTo(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Wrote default config to %s\n", path)
	return nil
}
