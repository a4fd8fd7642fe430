// Package swatch provides an output plugin that renders a gradient to a PNG image.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/rolegen/internal/colour"
)

const (
	minSize = 16
	maxSize = 1024
)

// Plugin implements the output.Plugin interface for PNG swatches.
type Plugin struct {
	size      int
	labels    bool
	vertical  bool
	outputDir string
	logger    hclog.Logger
}

// New creates a new swatch output plugin.
func New() *Plugin {
	return &Plugin{
		size:      96,
		labels:    true,
		outputDir: ".",
		logger:    hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "swatch"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render the gradient as a PNG swatch strip"
}

// SetLogger sets the logger used while rendering.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p.logger = logger
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.size, "swatch.size", p.size, fmt.Sprintf("Edge length of each colour block in pixels (%d-%d)", minSize, maxSize))
	cmd.Flags().BoolVar(&p.labels, "swatch.labels", p.labels, "Draw the hex code on each block")
	cmd.Flags().BoolVar(&p.vertical, "swatch.vertical", false, "Stack blocks top to bottom instead of left to right")
	cmd.Flags().StringVar(&p.outputDir, "swatch.output-dir", p.outputDir, "Output directory")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.size < minSize || p.size > maxSize {
		return fmt.Errorf("invalid swatch size: %d (must be between %d and %d)", p.size, minSize, maxSize)
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

// Render draws the gradient into an image, one square block per colour.
func (p *Plugin) Render(gradient *colour.Gradient) *image.RGBA {
	n := gradient.Len()
	bounds := image.Rect(0, 0, p.size*n, p.size)
	if p.vertical {
		bounds = image.Rect(0, 0, p.size, p.size*n)
	}
	img := image.NewRGBA(bounds)

	for i, c := range gradient.All() {
		block := image.Rect(i*p.size, 0, (i+1)*p.size, p.size)
		if p.vertical {
			block = image.Rect(0, i*p.size, p.size, (i+1)*p.size)
		}
		draw.Draw(img, block, image.NewUniform(c), image.Point{}, draw.Src)

		if p.labels {
			drawLabel(img, block, c)
		}
	}

	return img
}

// drawLabel centres the colour's hex code at the bottom of its block.
func drawLabel(img draw.Image, block image.Rectangle, c colour.RGB) {
	face := basicfont.Face7x13
	text := c.Hex()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colour.ReadableOn(c)),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	if width > block.Dx() {
		return
	}

	x := block.Min.X + (block.Dx()-width)/2
	y := block.Max.Y - face.Descent - 4
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// Generate creates gradient.png from the gradient.
func (p *Plugin) Generate(gradient *colour.Gradient) (map[string][]byte, error) {
	if gradient == nil {
		return nil, fmt.Errorf("gradient cannot be nil")
	}

	img := p.Render(gradient)
	p.logger.Debug("rendered swatch", "width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "labels", p.labels)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return map[string][]byte{"gradient.png": buf.Bytes()}, nil
}
