// Package cli provides the command-line interface for rolegen.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/rolegen/internal/plugin/manager"
	"github.com/jmylchreest/rolegen/internal/version"
)

const aboutText = `rolegen generates rainbow-like colour runs, for example a set of Discord
role colours. Choose two colours and the number of roles, and rolegen fills
in the colours between them by walking hue, saturation and value in a
straight line.

Colours may be given as #RRGGBB, #RGB or a CSS colour name. Input that
cannot be parsed falls back to white and a warning is logged.`

// rootOptions holds state shared by every subcommand of one root command.
type rootOptions struct {
	verbose bool
	quiet   bool
	noColor bool

	logger  hclog.Logger
	manager *manager.Manager
}

// NewRootCmd builds the rolegen command tree.
// Each call returns an independent tree with its own plugin instances.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "rolegen",
		Short:        "Generate colour gradients between two colours",
		Long:         aboutText,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.logger.SetLevel(opts.logLevel())
		},
	}

	// The logger exists before flags are parsed so the manager can be built with
	// it; its level is set once --verbose and --quiet are known.
	opts.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "rolegen",
		Output: stderrWriter{cmd: rootCmd},
		Level:  hclog.Warn,
	})
	opts.manager = manager.NewBuilder().
		WithEnvConfig().
		WithLogger(opts.logger).
		Build()

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "never emit ANSI colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGradientCmd(opts))
	rootCmd.AddCommand(newMixCmd(opts))
	rootCmd.AddCommand(newHSVCmd(opts))
	rootCmd.AddCommand(newOutputsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// stderrWriter writes to the command's error stream as configured at write time.
type stderrWriter struct {
	cmd *cobra.Command
}

func (w stderrWriter) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

// logLevel maps --verbose and --quiet onto a log level.
func (o *rootOptions) logLevel() hclog.Level {
	switch {
	case o.verbose:
		return hclog.Debug
	case o.quiet:
		return hclog.Error
	default:
		return hclog.Warn
	}
}

// previewEnabled decides whether ANSI colour blocks are written to out.
// mode is one of "auto", "always" or "never"; auto previews only on a terminal.
func (o *rootOptions) previewEnabled(mode string, out io.Writer) (bool, error) {
	if o.noColor {
		return false, nil
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false, nil
	}

	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil //nolint:gosec // Fd() fits in int on all supported platforms
	default:
		return false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}

			data, err := json.MarshalIndent(version.GetInfo(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to convert to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
