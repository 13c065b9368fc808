package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"helpdock/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [slug]",
	Short: "Open the help center in the terminal",
	Long: `Opens the terminal help browser on the home grid, or directly on the
page named by slug. Run 'helpdock pages' to list slugs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The terminal belongs to the UI, so logs go to log_file or nowhere.
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	opts := tui.Options{Config: cfg, Library: lib, Logger: log}
	if len(args) == 1 {
		if _, err := lib.Page(args[0]); err != nil {
			return err
		}
		opts.StartPage = args[0]
	}
	if cfg.ContentDir != "" {
		var w *fsnotify.Watcher
		w, err = tui.WatchContent(cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
		}
		defer w.Close()
		opts.Watcher = w
	}

	log.Info("browser starting", "pages", len(lib.Pages()), "start", opts.StartPage)
	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
