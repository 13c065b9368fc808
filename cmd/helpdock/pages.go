package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the help pages",
	Args:  cobra.NoArgs,
	RunE:  runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SLUG", "TITLE", "SECTIONS", "ARTICLES")
	for _, p := range lib.Pages() {
		t.Row(p.Slug, p.Title, strconv.Itoa(len(p.Categories)), strconv.Itoa(p.ItemCount()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
