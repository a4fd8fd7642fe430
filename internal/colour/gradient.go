package colour

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MinCount is the smallest number of colours a gradient can hold (both endpoints).
const MinCount = 2

// ErrInvalidCount is returned when a gradient is requested with fewer than MinCount colours.
var ErrInvalidCount = errors.New("invalid gradient count")

// Generate returns count colours walking from a to b through HSV space.
//
// Hue, saturation and value are interpolated linearly on their raw values, so
// endpoints either side of 0/360 degrees travel the long way round the wheel.
// Both endpoints are returned exactly as given; only interior samples pass
// through the HSV round trip.
func Generate(a, b RGB, count int) ([]RGB, error) {
	if count < MinCount {
		return nil, fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidCount, count, MinCount)
	}

	hsvA := ToHSV(a)
	hsvB := ToHSV(b)

	colours := make([]RGB, 0, count)
	colours = append(colours, a)
	for i := 1; i < count-1; i++ {
		colours = append(colours, FromHSV(lerpHSV(hsvA, hsvB, i, count-1)))
	}
	colours = append(colours, b)

	return colours, nil
}

// Mix returns the colour half way between a and b in HSV space.
func Mix(a, b RGB) RGB {
	hsvA := ToHSV(a)
	hsvB := ToHSV(b)
	return FromHSV(HSV{
		H: (hsvA.H + hsvB.H) / 2,
		S: (hsvA.S + hsvB.S) / 2,
		V: (hsvA.V + hsvB.V) / 2,
	})
}

// lerpHSV returns the step-th of steps points between a and b.
func lerpHSV(a, b HSV, step, steps int) HSV {
	i := float64(step)
	n := float64(steps)
	return HSV{
		H: a.H + (b.H-a.H)*i/n,
		S: a.S + (b.S-a.S)*i/n,
		V: a.V + (b.V-a.V)*i/n,
	}
}

// Gradient is an ordered run of colours between two endpoints.
type Gradient struct {
	From    RGB
	To      RGB
	Colours []RGB
}

// NewGradient generates a gradient of count colours from a to b.
func NewGradient(a, b RGB, count int) (*Gradient, error) {
	colours, err := Generate(a, b, count)
	if err != nil {
		return nil, err
	}
	return &Gradient{From: a, To: b, Colours: colours}, nil
}

// Len returns the number of colours in the gradient.
func (g *Gradient) Len() int {
	return len(g.Colours)
}

// All returns an iterator over all colours in the gradient.
func (g *Gradient) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range g.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ToHex converts the gradient colours to hex strings.
func (g *Gradient) ToHex() []string {
	hexColours := make([]string, len(g.Colours))
	for i, c := range g.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSV HSV    `json:"hsv"`
}

// GradientJSON represents the gradient in JSON format.
type GradientJSON struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the gradient to indented JSON.
func (g *Gradient) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(g.Colours))
	for i, c := range g.Colours {
		colours[i] = ColourJSON{
			Hex: c.Hex(),
			RGB: c,
			HSV: ToHSV(c),
		}
	}

	return json.MarshalIndent(GradientJSON{
		From:    g.From.Hex(),
		To:      g.To.Hex(),
		Count:   len(g.Colours),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable representation of the gradient.
func (g *Gradient) String() string {
	if len(g.Colours) == 0 {
		return "Empty gradient"
	}

	result := fmt.Sprintf("Gradient %s -> %s with %d colours:\n", g.From.Hex(), g.To.Hex(), len(g.Colours))
	for i, c := range g.Colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}
