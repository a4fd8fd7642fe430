package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rolegen/internal/colour"
)

type mixOptions struct {
	format  string
	preview string
}

// newMixCmd creates the mix command.
func newMixCmd(root *rootOptions) *cobra.Command {
	opts := &mixOptions{}

	cmd := &cobra.Command{
		Use:   "mix <a> <b>",
		Short: "Print the colour halfway between two colours",
		Long: `Print the colour halfway between two colours in HSV space.

This is the middle sample of a three colour gradient, so mixing red and blue
gives the hue halfway between 0 and 240 degrees: green.`,
		Example: `  rolegen mix red blue
  rolegen mix '#FF8800' teal -f json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			preview, err := root.previewEnabled(opts.preview, out)
			if err != nil {
				return err
			}

			mixed := colour.Mix(parseEndpoint(root, args[0]), parseEndpoint(root, args[1]))

			switch opts.format {
			case "hex":
				if preview {
					fmt.Fprintln(out, colour.FormatColourWithPreview(mixed, previewWidth))
					return nil
				}
				fmt.Fprintln(out, mixed.Hex())
			case "rgb":
				fmt.Fprintln(out, mixed.String())
			case "hsv":
				fmt.Fprintln(out, colour.ToHSV(mixed).String())
			case "json":
				data, err := json.MarshalIndent(colour.ColourJSON{
					Hex: mixed.Hex(),
					RGB: mixed,
					HSV: colour.ToHSV(mixed),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			default:
				return fmt.Errorf("unsupported format: %s (supported: hex, rgb, hsv, json)", opts.format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, hsv, json)")
	cmd.Flags().StringVar(&opts.preview, "preview", "auto", "show a colour preview (auto, always, never)")

	return cmd
}
