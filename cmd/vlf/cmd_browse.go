package main

import (
	"github.com/Cyclone1070/vlf/internal/listing"
	"github.com/Cyclone1070/vlf/internal/ui"
	"github.com/Cyclone1070/vlf/internal/ui/views"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [dir]",
	Short: "Browse a directory; enter opens through the policy, v views large",
	Long: `Browse a directory listing with sizes and resolved modes. Files over
the threshold are highlighted.

  enter  open the file through the interception policy
  v      open the file in the large-file viewer, skipping the policy
  ⌫      parent directory

Logs go to --log-file while the browser owns the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().Bool("all", false, "Include files ignored by .gitignore")
	browseCmd.Flags().Int("depth", 0, "Listing depth (0: immediate children, -1: unlimited)")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	all, _ := cmd.Flags().GetBool("all")
	depth, _ := cmd.Flags().GetInt("depth")

	if logFile, _ := cmd.Flags().GetString("log-file"); logFile == "" {
		// Keep the alternate screen clean.
		_ = cmd.Flags().Set("log-file", nullDevice)
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	views.ApplyTheme(a.cfg.UI.ColorPrimary, a.cfg.UI.ColorWarning, a.cfg.UI.ColorMuted)

	channels := ui.NewChannels()
	o := a.newOpener(ui.NewChannelPrompt(channels))

	browser := ui.NewUI(channels, ui.Deps{
		Lister:   listing.NewLister(a.fs, a.resolver, a.logger),
		Opener:   o,
		Commands: a.launcher,
		Settings: a.settings,
		ListOptions: listing.Options{
			MaxDepth:       depth,
			IncludeIgnored: all || a.cfg.Listing.IncludeIgnored,
			MaxEntries:     a.cfg.Listing.MaxEntries,
		},
	}, dir)
	return browser.Start()
}
