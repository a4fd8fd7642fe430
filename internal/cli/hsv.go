package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rolegen/internal/colour"
)

// newHSVCmd creates the hsv command.
func newHSVCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hsv <colour>...",
		Short: "Show how colours convert to and from HSV",
		Long: `Show each colour's HSV components and the colour they convert back to.

ROUND TRIP is the result of converting the HSV values back to RGB; it may
differ from the input by one in a channel due to truncation.`,
		Example: `  rolegen hsv red '#808080' cornflowerblue`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"INPUT", "HEX", "H", "S", "V", "ROUND TRIP"})

			for _, arg := range args {
				rgb := parseEndpoint(root, arg)
				hsv := colour.ToHSV(rgb)
				table.AddRow([]string{
					arg,
					rgb.Hex(),
					fmt.Sprintf("%.2f", hsv.H),
					fmt.Sprintf("%.4f", hsv.S),
					fmt.Sprintf("%.4f", hsv.V),
					colour.FromHSV(hsv).Hex(),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
