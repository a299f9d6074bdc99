package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"country-explorer/internal/config"
	"country-explorer/internal/logging"
	"country-explorer/internal/service"
	"country-explorer/internal/tui"
)

var browseLogFile string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive terminal browser",
	Long: `Opens a full-screen country grid. Moving past the last row loads the next page.

Keys:
  r / s / p / o   cycle region, subregion, population bracket, sort order
  /               search by name
  enter           show details of the highlighted country
  esc             back to the list
  q               quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseLogFile, "log-file", "", "Write logs at LOG_LEVEL (debug with --verbose) to this file")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	switch {
	case browseLogFile != "":
		var err error
		logger, err = logging.NewFile(browseLogFile, config.AppConfig.LogLevel, verbose)
		if err != nil {
			return err
		}
	case verbose:
		cmd.PrintErrln("--verbose has no effect on browse without --log-file")
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	source := newSource()
	explorerService := service.NewExplorerService(source, store, logger)
	detailsService := service.NewDetailsService(source, store, explorerService, logger)

	final, err := tea.NewProgram(tui.New(ctx, explorerService, detailsService), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("terminal browser: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.SessionID() != "" {
		if err := explorerService.Close(ctx, m.SessionID()); err != nil {
			logger.Warn("Failed to close session", zap.Error(err))
		}
	}
	return nil
}
