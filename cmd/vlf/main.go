// Command vlf opens files through the large-file interception policy.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "vlf",
	Short: "Open files, diverting large ones to a chunked viewer",
	Long: `vlf decides, for each file you open, whether to open it normally,
hand it to a large-file viewer, or ask you first.

The decision uses the file size, the configured threshold and batch size,
the editing mode the file name resolves to, and the application level
(never, ask, dont-ask, always).

Configuration is read from ~/.config/vlf/config.json. Flags and VLF_*
environment variables (e.g. VLF_POLICY_APPLICATION) override it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.config/vlf/config.json)")
	flags.BoolP("verbose", "V", false, "Log decisions at debug level")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.String("application", "", "Application level: never, ask, dont-ask, always")
	flags.String("batch-size", "", "Viewer batch size (e.g. 1000000, 1MB, 512KiB)")
	flags.String("threshold", "", `Large file threshold (e.g. 10MB), or "none" to disable`)
	flags.String("editor", "", "Editor command (default $EDITOR, then vi)")
	flags.String("viewer", "", "Large file viewer command")

	viper.BindPFlag("policy.application", flags.Lookup("application"))
	viper.BindPFlag("policy.batch_size", flags.Lookup("batch-size"))
	viper.BindPFlag("policy.threshold", flags.Lookup("threshold"))
	viper.BindPFlag("commands.editor", flags.Lookup("editor"))
	viper.BindPFlag("commands.viewer", flags.Lookup("viewer"))

	viper.SetEnvPrefix("VLF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "vlf: %s\n", msg)
		}
		os.Exit(exitErr.ExitCode())
	}
	fmt.Fprintf(os.Stderr, "vlf: %v\n", err)
	os.Exit(1)
}
