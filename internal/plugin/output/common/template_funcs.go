// Package common provides shared utilities for output plugins.
package common

import (
	"fmt"
	"text/template"

	"github.com/jmylchreest/rolegen/internal/colour"
)

// TemplateFuncs returns the template functions available to every output template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Colour values.
		"hex": hexFunc,
		"rgb": rgbFunc,
		"hsl": hslFunc,

		// Position helpers.
		"add1":    add1Func,
		"percent": percentFunc,
		"last":    lastFunc,
	}
}

// hexFunc returns colour in #RRGGBB format.
func hexFunc(c colour.RGB) string {
	return c.Hex()
}

// rgbFunc returns colour in CSS rgb(r, g, b) format.
func rgbFunc(c colour.RGB) string {
	return c.String()
}

// hslFunc returns colour in CSS hsl(h, s%, l%) format.
// The value component of colour.HSV is the midpoint lightness, so it maps onto
// CSS lightness directly.
func hslFunc(c colour.RGB) string {
	hsv := colour.ToHSV(c)
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", hsv.H, hsv.S*100, hsv.V*100)
}

// add1Func converts a zero based index to a one based position.
func add1Func(i int) int {
	return i + 1
}

// percentFunc returns the position of index i in a run of n stops as a percentage.
func percentFunc(i, n int) string {
	if n <= 1 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(i)*100/float64(n-1))
}

// lastFunc reports whether i is the final index of a run of n items.
func lastFunc(i, n int) bool {
	return i == n-1
}
