package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newOutputsCmd creates the outputs command.
func newOutputsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "List available output plugins",
		Long: `List the output plugins that 'rolegen gradient --outputs' can run.

Plugins can be turned off with ROLEGEN_DISABLED_OUTPUTS, or restricted with
ROLEGEN_ENABLED_OUTPUTS, each a comma-separated list of plugin names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gradientCmd, _, err := cmd.Root().Find([]string{"gradient"})
			if err != nil {
				return fmt.Errorf("failed to find gradient command: %w", err)
			}

			table := NewTable([]string{"NAME", "ENABLED", "OUTPUT DIR", "DESCRIPTION", "FLAGS"})
			for _, name := range root.manager.Registry().List() {
				plugin, ok := root.manager.GetOutputPlugin(name)
				if !ok {
					continue
				}

				enabled := "yes"
				if root.manager.IsOutputDisabled(name) {
					enabled = "no"
				}

				table.AddRow([]string{
					name,
					enabled,
					plugin.DefaultOutputDir(),
					plugin.Description(),
					strings.Join(pluginFlags(gradientCmd.Flags(), name), ", "),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

// pluginFlags returns the long flag names a plugin registered, in sorted order.
func pluginFlags(flags *pflag.FlagSet, plugin string) []string {
	prefix := plugin + "."

	var names []string
	flags.VisitAll(func(f *pflag.Flag) {
		if strings.HasPrefix(f.Name, prefix) {
			names = append(names, "--"+f.Name)
		}
	})
	return names
}
