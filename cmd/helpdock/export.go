package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"helpdock/internal/web"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the help center as a static site",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}
	n, err := web.NewServer(lib, log, *cfg).Export(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", n, args[0])
	return nil
}
