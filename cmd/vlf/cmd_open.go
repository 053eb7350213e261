package main

import (
	"os"

	"github.com/Cyclone1070/vlf/internal/mode"
	"github.com/Cyclone1070/vlf/internal/opener"
	"github.com/Cyclone1070/vlf/internal/ui"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [flags] <file>...",
	Short: "Open files, asking the policy how",
	Long: `Open each file in the editor, or in the large-file viewer when the
interception policy says so. With application "ask" a large file prompts
for a single key: o opens normally, v opens the viewer, a aborts.

--as names the host command performing the open. Commands listed in
commands.exempt (default: tags-verify-table) run with interception off.`,
	Example: `  vlf open server.log
  vlf open --application dont-ask dump.sql
  vlf open --mode text-mode --op insert notes.bin
  vlf open --as tags-verify-table TAGS`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().String("mode", "", "Declared editing mode, skipping resolution")
	openCmd.Flags().String("op", "open", "Operation named in the prompt")
	openCmd.Flags().String("as", "", "Host command performing the open")

	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	declared, _ := cmd.Flags().GetString("mode")
	op, _ := cmd.Flags().GetString("op")
	as, _ := cmd.Flags().GetString("as")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	o := a.newOpener(ui.NewTerminalPrompt(os.Stdin, cmd.ErrOrStderr()))

	for _, path := range args {
		req := opener.Request{Path: path, Operation: op}
		if declared != "" {
			id := mode.ID(declared)
			req.Mode = &id
		}
		err := a.guard.Run(as, func() error {
			_, err := o.OpenFile(cmd.Context(), req)
			return err
		})
		if err != nil {
			return commandExit(err)
		}
	}
	return nil
}
