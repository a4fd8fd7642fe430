package colour

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColour parses a user supplied colour.
// Supports #RRGGBB, #RGB and CSS/SVG colour names (case-insensitive, spaces
// ignored, e.g. "Dark Orange"). Hex digits without a leading '#' are treated
// as a name, so "bad" or "FF0000" are rejected rather than read as hex.
func ParseColour(s string) (RGB, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return RGB{}, fmt.Errorf("empty colour")
	}

	if strings.HasPrefix(input, "#") {
		return parseHex(input)
	}

	name := strings.ToLower(strings.ReplaceAll(input, " ", ""))
	c, ok := colornames.Map[name]
	if !ok {
		return RGB{}, fmt.Errorf("unknown colour %q: not a #hex value or colour name", s)
	}
	return ToRGB(c), nil
}

// ParseColourOrDefault parses a colour, falling back to White when the input
// is not recognised. The parse error is still returned so callers can report it.
func ParseColourOrDefault(s string) (RGB, error) {
	rgb, err := ParseColour(s)
	if err != nil {
		return White, err
	}
	return rgb, nil
}

// parseHex parses a '#'-prefixed hex colour string into an RGB struct.
func parseHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 6 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
