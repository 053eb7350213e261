package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Cyclone1070/vlf/internal/mode"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Show the editing mode each file name resolves to",
	Example: `  vlf resolve main.go backup.tar.gz~ /ssh:host:/var/log/app.log`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return writeResolutions(cmd.OutOrStdout(), a.resolver, args)
}

func writeResolutions(out io.Writer, r *mode.Resolver, names []string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNORMALIZED\tMODE")
	for _, name := range names {
		id, ok := r.Resolve(name)
		resolved := "-"
		if ok {
			resolved = string(id)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, mode.Normalize(name), resolved)
	}
	return w.Flush()
}
