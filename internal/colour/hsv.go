package colour

import (
	"fmt"
	"math"
)

// HSV represents a colour as hue (0-360 degrees), saturation (0-1) and value (0-1).
// It only exists as an intermediate form while converting or interpolating.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the HSV colour as "hsv(h, s%, v%)".
func (hsv HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.1f%%, %.1f%%)", hsv.H, hsv.S*100, hsv.V*100)
}

// ToHSV converts an RGB colour to HSV.
//
// Value is the midpoint of the largest and smallest channel and saturation is
// scaled against it, which is the pair FromHSV reconstructs from. Grey input
// always yields zero hue and saturation.
func ToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: (maxVal + minVal) / 2.0}

	// Achromatic.
	if delta == 0 {
		return hsv
	}

	if hsv.V <= 0.5 {
		hsv.S = delta / (maxVal + minVal)
	} else {
		hsv.S = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		hsv.H = (g - b) / delta
	case g:
		hsv.H = 2 + (b-r)/delta
	default:
		hsv.H = 4 + (r-g)/delta
	}

	hsv.H *= 60
	if hsv.H < 0 {
		hsv.H += 360
	}

	return hsv
}

// FromHSV converts an HSV colour back to RGB.
// Channels are truncated rather than rounded, so a round trip through ToHSV
// may drift by one in any channel.
func FromHSV(hsv HSV) RGB {
	if hsv.S == 0 {
		// Achromatic (grey).
		l := clampChannel(math.Round(hsv.V * 255))
		return RGB{R: l, G: l, B: l}
	}

	var maxVal float64
	if hsv.V < 0.5 {
		maxVal = hsv.V * (1 + hsv.S)
	} else {
		maxVal = hsv.V + hsv.S - hsv.V*hsv.S
	}
	minVal := 2*hsv.V - maxVal

	h := hsv.H / 360.0

	return RGB{
		R: clampChannel(math.Trunc(255 * channelFromHue(minVal, maxVal, h+1.0/3.0))),
		G: clampChannel(math.Trunc(255 * channelFromHue(minVal, maxVal, h))),
		B: clampChannel(math.Trunc(255 * channelFromHue(minVal, maxVal, h-1.0/3.0))),
	}
}

// channelFromHue samples the piecewise-linear hue ramp for one channel.
// h is measured in turns and is wrapped into [0, 1).
func channelFromHue(m1, m2, h float64) float64 {
	h = math.Mod(h+1, 1)
	if h < 0 {
		h++
	}

	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*6*h
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*6*(2.0/3.0-h)
	default:
		return m1
	}
}

// clampChannel converts an already truncated or rounded value into a channel byte.
func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
