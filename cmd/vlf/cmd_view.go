package main

import (
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>...",
	Short: "Open files in the large-file viewer unconditionally",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	o := a.newOpener(nil)
	for _, path := range args {
		if err := o.OpenLarge(cmd.Context(), path); err != nil {
			return err
		}
	}
	return nil
}
