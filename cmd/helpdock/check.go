package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdock/internal/web"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate the content, and the links of an exported site",
	Long: `Validates the help content. When dir is given it must hold a site
written by 'helpdock export'; every internal link in it is checked. Broken
links are reported, and with --strict they fail the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "fail when broken links are found")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}
	items := 0
	for _, p := range lib.Pages() {
		items += p.ItemCount()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Content OK: %d pages, %d articles\n", len(lib.Pages()), items)

	if len(args) == 0 {
		return nil
	}
	rep, err := web.CheckLinks(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Checked %d links in %d files: %d broken, %d article links outside the site\n",
		rep.Checked, rep.Files, len(rep.Broken), len(rep.Detail))
	for _, l := range rep.Broken {
		fmt.Fprintf(cmd.OutOrStdout(), "  broken: %s -> %s\n", l.Source, l.Href)
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict && !rep.OK() {
		return fmt.Errorf("%d broken links", len(rep.Broken))
	}
	return nil
}
