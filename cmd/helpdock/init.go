package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"helpdock/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if force, _ := cmd.Flags().GetBool("force"); !force {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
	}
	if err := config.DefaultConfig().Save(cfgFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
	return nil
}
