// ABOUTME: Web server and terminal UI subcommands
// ABOUTME: Starts the HTTP dashboard or the bubbletea interface over the shared store
package cli

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/crmdash/config"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/tui"
	"github.com/harperreed/crmdash/web"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the TUI is started without a TTY.
var ErrNotTerminal = errors.New("the terminal UI needs an interactive terminal")

// ServeCommand runs the web dashboard until ctx is cancelled.
func ServeCommand(ctx context.Context, s *store.Store, cfg *config.Config, logger *zap.Logger) error {
	srv, err := web.NewServer(s, cfg, logger)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}

// TUICommand runs the interactive terminal UI.
func TUICommand(s *store.Store, f *stats.Formatter) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	p := tea.NewProgram(tui.NewModel(s, f), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
