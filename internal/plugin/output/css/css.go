// Package css provides a CSS custom property output plugin.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rolegen/internal/colour"
	"github.com/jmylchreest/rolegen/internal/plugin/output/common"
)

//go:embed *.tmpl
var templates embed.FS

var prefixPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// Value formats accepted by --css.format.
const (
	formatHex = "hex"
	formatRGB = "rgb"
	formatHSL = "hsl"
)

// Plugin implements the output.Plugin interface for CSS custom properties.
type Plugin struct {
	prefix    string
	selector  string
	format    string
	outputDir string
}

// New creates a new CSS output plugin.
func New() *Plugin {
	return &Plugin{
		prefix:    "gradient",
		selector:  ":root",
		format:    formatHex,
		outputDir: ".",
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate CSS custom properties for each gradient stop"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.prefix, "css.prefix", p.prefix, "Custom property name prefix")
	cmd.Flags().StringVar(&p.selector, "css.selector", p.selector, "Selector the properties are declared on")
	cmd.Flags().StringVar(&p.format, "css.format", p.format, "Property value format (hex, rgb, hsl)")
	cmd.Flags().StringVar(&p.outputDir, "css.output-dir", p.outputDir, "Output directory")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if !prefixPattern.MatchString(p.prefix) {
		return fmt.Errorf("invalid prefix: %q (must start with a letter and contain only letters, digits, '-' or '_')", p.prefix)
	}
	if p.selector == "" {
		return fmt.Errorf("selector cannot be empty")
	}
	switch p.format {
	case formatHex, formatRGB, formatHSL:
	default:
		return fmt.Errorf("invalid format: %q (supported: hex, rgb, hsl)", p.format)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir == "" {
		return "."
	}
	return p.outputDir
}

// templateData holds data for the CSS template.
type templateData struct {
	Prefix   string
	Selector string
	Format   string
	Gradient *colour.Gradient
	Count    int
}

// Generate creates the CSS file from the gradient.
func (p *Plugin) Generate(gradient *colour.Gradient) (map[string][]byte, error) {
	if gradient == nil {
		return nil, fmt.Errorf("gradient cannot be nil")
	}

	tmplContent, err := templates.ReadFile("gradient.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS template: %w", err)
	}

	tmpl, err := template.New("gradient.css").Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := templateData{
		Prefix:   p.prefix,
		Selector: p.selector,
		Format:   p.format,
		Gradient: gradient,
		Count:    gradient.Len(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{"gradient.css": buf.Bytes()}, nil
}
