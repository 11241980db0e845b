package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pullmenu/internal/app"
	"pullmenu/internal/config"
	"pullmenu/internal/swipe"
	"pullmenu/internal/trace"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pullmenu",
		Short: "Pull-down-to-reveal menu demo",
		Long: "pullmenu shows a scrollable page inside a pull-down gesture container.\n" +
			"Drag the page down with the mouse to reveal an action row; release past\n" +
			"the threshold to run the action under the pointer.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	cmd.Flags().String("config", "", "Path to config file (overrides PULLMENU_CONFIG env var)")
	cmd.Flags().String("log-file", "", "Write debug logs to this file")
	cmd.Flags().Int("threshold", 0, "Rows to drag before a release commits")
	cmd.Flags().Duration("latency", config.DefaultLatency, "How long a selected action pretends to run")
	return cmd
}

// runApp loads configuration, wires logging and tracing, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{Path: path, Flags: cmd.Flags()})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.LogFile != "" {
		// stdout belongs to the UI, so logs go to a file.
		f, err := tea.LogToFile(cfg.LogFile, "pullmenu")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(logger)

	observers := []swipe.Observer{swipe.NewLogObserver(logger)}
	tp, err := trace.NewProvider(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Tracing disabled:", err)
	}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("trace shutdown failed", "err", err)
			}
		}()
		sessions := trace.NewSessionObserver(tp)
		defer sessions.Close()
		observers = append(observers, sessions)
	}

	logger.Info("starting",
		"threshold", cfg.Gesture.Threshold,
		"slop", cfg.Gesture.Slop,
		"latency", cfg.Latency,
	)

	model := app.NewAppModel(app.Options{
		Theme:    &cfg.Theme,
		Gesture:  cfg.Gesture,
		Latency:  cfg.Latency,
		Observer: swipe.NewMultiObserver(observers...),
	}).AsTeaModel()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
