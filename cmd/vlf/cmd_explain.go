package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/vlf/internal/opener"
	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/Cyclone1070/vlf/internal/ui/services"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var explainCmd = &cobra.Command{
	Use:   "explain <file>...",
	Short: "Explain how open would treat each file, without opening it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().Bool("raw", false, "Print markdown without rendering")

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	o := a.newOpener(nil)
	p := policy.New(a.resolver, nil, a.logger)
	cfg := a.settings.Snapshot()

	var sb strings.Builder
	for _, path := range args {
		fd, err := o.Describe(opener.Request{Path: path})
		if err != nil {
			return err
		}
		writeExplanation(&sb, fd, p.Explain(fd, cfg), cfg)
	}

	var renderer services.MarkdownRenderer = services.GlamourRenderer{}
	if raw {
		renderer = services.PlainRenderer{}
	}
	fmt.Fprint(cmd.OutOrStdout(), services.RenderMarkdown(sb.String(), terminalWidth(), renderer))
	return nil
}

func writeExplanation(w io.Writer, fd policy.FileDescriptor, exp policy.Explanation, cfg policy.Config) {
	fmt.Fprintf(w, "## %s\n\n", fd.Path)
	fmt.Fprintln(w, "| | |")
	fmt.Fprintln(w, "|---|---|")
	size := "unknown"
	if fd.Size != nil {
		size = fmt.Sprintf("%s (%d bytes)", policy.HumanSize(*fd.Size), *fd.Size)
	}
	fmt.Fprintf(w, "| size | %s |\n", size)
	resolved := "none"
	if exp.Mode != "" {
		resolved = "`" + string(exp.Mode) + "`"
	}
	fmt.Fprintf(w, "| mode | %s |\n", resolved)
	if fd.RemotePrefix != "" {
		fmt.Fprintf(w, "| remote | `%s` |\n", fd.RemotePrefix)
	}
	threshold := "none"
	if cfg.Threshold != nil {
		threshold = policy.HumanSize(*cfg.Threshold)
	}
	fmt.Fprintf(w, "| threshold | %s |\n", threshold)
	fmt.Fprintf(w, "| batch size | %s |\n", policy.HumanSize(cfg.BatchSize))
	fmt.Fprintf(w, "| application | %s |\n", cfg.Application)
	fmt.Fprintf(w, "| rule | `%s` |\n", exp.Rule)
	if exp.Rule == "ask" {
		fmt.Fprintf(w, "| decision | prompt |\n\n> %s\n\n", exp.Prompt)
		return
	}
	fmt.Fprintf(w, "| decision | **%s** |\n\n", exp.Action)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(1); err == nil && w > 0 {
		return min(w, 120)
	}
	return 80
}
