package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"filecredit/internal/config"
	"filecredit/internal/domain"
	"filecredit/internal/logger"
	"filecredit/internal/opener"
	"filecredit/internal/processor"
	"filecredit/internal/report"
	"filecredit/internal/tui"
)

// openReport is replaced in tests.
var openReport = opener.Open

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filecredit [directory]",
		Short: "Score PDF, DGN and DWG files and write a credit report",
		Long: `filecredit walks a directory tree, measures every PDF page against A4,
charges a flat 16 pages for DGN and DWG drawings, and writes an xlsx report
with one row per file and a per-type summary into the scanned directory.

Environment:
  FILECREDIT_NO_OPEN      do not open the report when done
  FILECREDIT_NO_TUI       print plain progress instead of the live view
  FILECREDIT_LOG_LEVEL    debug, info, warn or error
  FILECREDIT_LOG_FILE     append logs to this file
  FILECREDIT_REPORT_NAME  report file prefix (default file_credit_report)`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, cmd.OutOrStdout(), afero.NewOsFs(), dir, cfg)
		},
	}
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, fsys afero.Fs, dir string, cfg *config.Config) error {
	root, err := processor.ResolveRoot(fsys, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Scanning directory: %s\n", pathStyle.Render(root))

	res, err := scan(ctx, out, fsys, root, useTUI(out, cfg))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found %d files (%d skipped)\n", len(res.Records), len(res.Skipped))
	for _, s := range res.Skipped {
		fmt.Fprintf(out, "  %s %s: %v\n", warnStyle.Render("skipped"), s.Path, s.Reason)
	}

	path := report.PathFor(res, cfg.ReportName, time.Now())
	if err := report.Write(fsys, path, res); err != nil {
		return err
	}

	fmt.Fprintln(out, tui.RenderSummary(tui.ResultRows(res)))
	fmt.Fprintf(out, "Report written to: %s\n", pathStyle.Render(path))

	if !cfg.NoOpen {
		if err := openReport(path); err != nil {
			logger.Get().Warn().Err(err).Str("path", path).Msg("could not open report")
		}
	}
	return nil
}

// scan runs the processor, driving the live progress view when enabled.
// The view runs on its own goroutine; the scan itself stays on this one.
func scan(ctx context.Context, out io.Writer, fsys afero.Fs, root string, live bool) (res domain.ScanResult, err error) {
	if !live {
		return processor.Run(ctx, root, processor.Options{Fs: fsys}, nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan processor.ProgressUpdate, 64)
	program := tea.NewProgram(tui.NewModel(updates), tea.WithOutput(out))

	uiDone := make(chan struct{})
	go func() {
		defer close(uiDone)
		if _, runErr := program.Run(); runErr != nil {
			logger.Get().Debug().Err(runErr).Msg("progress view stopped")
		}
		// The view exits early on ctrl+c; stop the scan and keep it unblocked.
		cancel()
		for range updates {
		}
	}()

	res, err = processor.Run(ctx, root, processor.Options{Fs: fsys}, updates)
	close(updates)
	<-uiDone
	return res, err
}

func useTUI(out io.Writer, cfg *config.Config) bool {
	if cfg.NoTUI {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var (
	pathStyle  = lipgloss.NewStyle().Foreground(tui.ColorPath)
	warnStyle  = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorError)
)
