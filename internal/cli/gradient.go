package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rolegen/internal/colour"
	"github.com/jmylchreest/rolegen/internal/plugin/output"
	"github.com/jmylchreest/rolegen/internal/security"
)

const previewWidth = 8

// gradientOptions holds flags for the gradient command.
type gradientOptions struct {
	count   int
	format  string
	preview string
	outputs []string
	dryRun  bool
}

// newGradientCmd creates the gradient command.
func newGradientCmd(root *rootOptions) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient <from> <to>",
		Short: "Generate a run of colours between two colours",
		Long: `Generate a run of colours between two endpoint colours.

Both endpoints are included, so --count 5 prints the two colours you gave
plus three colours between them. Hue is interpolated on the raw 0-360 degree
value, so red (0) to magenta (300) travels through yellow, green, cyan and blue.

Output formats:
  hex     one #RRGGBB per line (default)
  inline  all hex codes on one line, space separated
  rgb     one rgb(r, g, b) per line
  hsv     one hsv(h, s%, v%) per line
  json    the gradient as JSON
  table   index, swatch, hex, rgb and hsv columns

Output plugins (--outputs) additionally write files; see 'rolegen outputs'.

Examples:
  # Five colours from red to blue
  rolegen gradient '#FF0000' '#0000FF'

  # Twelve Discord roles with a CSS sheet alongside
  rolegen gradient gold purple -n 12 --outputs discord,css

  # Preview in the terminal
  rolegen gradient tomato teal -n 8 -f table --preview always

  # Render a swatch without writing anything
  rolegen gradient '#123' '#fed' --outputs swatch --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 5, "number of colours including both endpoints (at least 2)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, inline, rgb, hsv, json, table)")
	cmd.Flags().StringVar(&opts.preview, "preview", "auto", "show colour previews (auto, always, never)")
	cmd.Flags().StringSliceVarP(&opts.outputs, "outputs", "o", nil, "output plugins to run (comma-separated or 'all')")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show which files output plugins would write without writing them")

	for _, plugin := range root.manager.AllOutputPlugins() {
		plugin.RegisterFlags(cmd)
	}

	return cmd
}

// runGradient executes the gradient command.
func runGradient(cmd *cobra.Command, root *rootOptions, opts *gradientOptions, args []string) error {
	logger := root.logger
	out := cmd.OutOrStdout()

	if !isGradientFormat(opts.format) {
		return fmt.Errorf("unsupported format: %s (supported: hex, inline, rgb, hsv, json, table)", opts.format)
	}

	preview, err := root.previewEnabled(opts.preview, out)
	if err != nil {
		return err
	}

	plugins, err := root.manager.SelectOutputs(opts.outputs)
	if err != nil {
		return err
	}

	from := parseEndpoint(root, args[0])
	to := parseEndpoint(root, args[1])

	logger.Debug("generating gradient", "from", from.Hex(), "to", to.Hex(), "count", opts.count)

	gradient, err := colour.NewGradient(from, to, opts.count)
	if err != nil {
		return fmt.Errorf("failed to generate gradient: %w", err)
	}

	formatted, err := formatGradient(gradient, opts.format, preview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprint(out, formatted)

	if len(plugins) == 0 {
		return nil
	}

	return runOutputPlugins(cmd, root, plugins, gradient, opts.dryRun)
}

// parseEndpoint parses a colour argument, falling back to white with a warning.
func parseEndpoint(root *rootOptions, arg string) colour.RGB {
	rgb, err := colour.ParseColourOrDefault(arg)
	if err != nil {
		root.logger.Warn("could not parse colour, using white", "input", arg, "error", err)
	}
	return rgb
}

// runOutputPlugins generates and writes files for every selected plugin.
// A failing plugin does not stop the others; the command fails if any did.
func runOutputPlugins(cmd *cobra.Command, root *rootOptions, plugins []output.Plugin, gradient *colour.Gradient, dryRun bool) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, plugin := range plugins {
		log := root.logger.With("plugin", plugin.Name())

		if err := plugin.Validate(); err != nil {
			log.Error("invalid plugin configuration", "error", err)
			failed++
			continue
		}

		files, err := plugin.Generate(gradient)
		if err != nil {
			log.Error("generation failed", "error", err)
			failed++
			continue
		}

		if err := writePluginFiles(out, plugin.DefaultOutputDir(), files, dryRun); err != nil {
			log.Error("write failed", "error", err)
			failed++
			continue
		}

		log.Debug("plugin execution complete", "files", len(files))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d output plugins failed", failed, len(plugins))
	}
	return nil
}

// writePluginFiles writes generated files under dir, or reports them on a dry run.
func writePluginFiles(out io.Writer, dir string, files map[string][]byte, dryRun bool) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := security.ValidateOutputName(name, dir); err != nil {
			return err
		}

		content := files[name]
		fullPath := filepath.Join(dir, name)

		if dryRun {
			fmt.Fprintf(out, "Would write: %s (%d bytes)\n", fullPath, len(content))
			continue
		}

		if err := writeFile(fullPath, content); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote: %s (%d bytes)\n", fullPath, len(content))
	}

	return nil
}

// writeFile writes content to path, creating parent directories as needed.
func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // generated colour files are meant to be world readable
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// isGradientFormat reports whether format is a known gradient output format.
func isGradientFormat(format string) bool {
	switch format {
	case "hex", "inline", "rgb", "hsv", "json", "table":
		return true
	}
	return false
}

// formatGradient formats the gradient according to the specified format.
func formatGradient(gradient *colour.Gradient, format string, preview bool) (string, error) {
	switch format {
	case "hex":
		return formatLines(gradient, preview, colour.RGB.Hex), nil
	case "rgb":
		return formatLines(gradient, preview, colour.RGB.String), nil
	case "hsv":
		return formatLines(gradient, preview, func(c colour.RGB) string {
			return colour.ToHSV(c).String()
		}), nil
	case "inline":
		return strings.Join(gradient.ToHex(), " ") + "\n", nil
	case "json":
		jsonBytes, err := gradient.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "table":
		return formatTable(gradient, preview), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatLines writes one colour per line using render, with an optional swatch.
func formatLines(gradient *colour.Gradient, preview bool, render func(colour.RGB) string) string {
	var b strings.Builder
	for _, c := range gradient.All() {
		if preview {
			b.WriteString(colour.ColourPreview(c, previewWidth))
			b.WriteString(" ")
		}
		b.WriteString(render(c))
		b.WriteString("\n")
	}
	return b.String()
}

// formatTable renders the gradient as a table.
func formatTable(gradient *colour.Gradient, preview bool) string {
	headers := []string{"#", "HEX", "RGB", "HSV"}
	if preview {
		headers = []string{"#", "SWATCH", "HEX", "RGB", "HSV"}
	}

	table := NewTable(headers)
	for i, c := range gradient.All() {
		row := []string{strconv.Itoa(i + 1), c.Hex(), c.String(), colour.ToHSV(c).String()}
		if preview {
			row = []string{strconv.Itoa(i + 1), colour.ColourPreviewWithText(c, "", previewWidth), c.Hex(), c.String(), colour.ToHSV(c).String()}
		}
		table.AddRow(row)
	}
	return table.Render()
}
