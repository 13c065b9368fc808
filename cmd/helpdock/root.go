package main

import (
	"github.com/spf13/cobra"

	"helpdock/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "helpdock",
	Short: "Browse and serve the salon help center",
	Long: `helpdock shows the help center in the terminal: topic pages with a
sidebar that follows your scroll position, search across every article and
copyable links. The same content can be served over HTTP or exported as a
static site.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, nil)
	},
}

// Execute runs the root command and prints any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
