package colour

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGenerateInvalidCount(t *testing.T) {
	for _, count := range []int{-5, 0, 1} {
		colours, err := Generate(RGB{R: 255}, RGB{B: 255}, count)
		if err == nil {
			t.Fatalf("Generate(count=%d) expected error, got %v", count, colours)
		}
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Generate(count=%d) error = %v, want ErrInvalidCount", count, err)
		}
	}
}

func TestGenerateTwo(t *testing.T) {
	a := RGB{R: 12, G: 200, B: 77}
	b := RGB{R: 250, G: 1, B: 9}

	got, err := Generate(a, b, 2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Generate(a, b, 2) = %v, want [%v %v]", got, a, b)
	}
}

func TestGenerateLengthAndEndpoints(t *testing.T) {
	pairs := [][2]RGB{
		{{R: 255}, {B: 255}},
		{{R: 10, G: 5, B: 255}, {R: 255, G: 255, B: 0}},
		{{R: 123, G: 45, B: 67}, {R: 123, G: 45, B: 67}},
		{White, {}},
	}

	for _, pair := range pairs {
		for n := 2; n <= 32; n++ {
			got, err := Generate(pair[0], pair[1], n)
			if err != nil {
				t.Fatalf("Generate(%v, %v, %d) error = %v", pair[0], pair[1], n, err)
			}
			if len(got) != n {
				t.Fatalf("Generate(%v, %v, %d) returned %d colours", pair[0], pair[1], n, len(got))
			}
			if got[0] != pair[0] {
				t.Errorf("Generate(..., %d)[0] = %v, want %v", n, got[0], pair[0])
			}
			if got[n-1] != pair[1] {
				t.Errorf("Generate(..., %d)[%d] = %v, want %v", n, n-1, got[n-1], pair[1])
			}
		}
	}
}

func TestGenerateRedToBlue(t *testing.T) {
	red := RGB{R: 255}
	blue := RGB{B: 255}

	got, err := Generate(red, blue, 5)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("Generate() returned %d colours, want 5", len(got))
	}
	if got[0] != red || got[4] != blue {
		t.Fatalf("Generate() endpoints = %v, %v", got[0], got[4])
	}

	// Hue walks 0 -> 240 in 60 degree steps.
	for i, wantHue := range []float64{60, 120, 180} {
		hsv := ToHSV(got[i+1])
		if !approxEqual(hsv.H, wantHue, 2) {
			t.Errorf("colour %d %s hue = %.2f, want about %.0f", i+1, got[i+1].Hex(), hsv.H, wantHue)
		}
	}
}

func TestLerpHSVMonotonicHue(t *testing.T) {
	a := ToHSV(RGB{R: 255, G: 40, B: 0})
	b := ToHSV(RGB{R: 80, G: 0, B: 255})
	if a.H > b.H {
		t.Fatalf("fixture hues out of order: %f > %f", a.H, b.H)
	}

	const steps = 20
	prev := a.H
	for i := 0; i <= steps; i++ {
		h := lerpHSV(a, b, i, steps).H
		if h < prev {
			t.Fatalf("step %d hue %f decreased from %f", i, h, prev)
		}
		prev = h
	}
	if !approxEqual(prev, b.H, 1e-9) {
		t.Errorf("final hue = %f, want %f", prev, b.H)
	}
}

func TestGenerateHueWrapTakesLongWay(t *testing.T) {
	// Hues near 356 and 4 degrees: linear interpolation passes through cyan.
	nearMagentaRed := RGB{R: 255, G: 0, B: 16}
	nearOrangeRed := RGB{R: 255, G: 16, B: 0}

	mid := Mix(nearMagentaRed, nearOrangeRed)
	want := RGB{R: 0, G: 255, B: 255}
	if channelDiff(mid.R, want.R) > 1 || channelDiff(mid.G, want.G) > 1 || channelDiff(mid.B, want.B) > 1 {
		t.Errorf("Mix() = %v, want about %v", mid, want)
	}

	got, err := Generate(nearMagentaRed, nearOrangeRed, 3)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if channelDiff(got[1].R, mid.R) > 1 || channelDiff(got[1].G, mid.G) > 1 || channelDiff(got[1].B, mid.B) > 1 {
		t.Errorf("Generate()[1] = %v, want about midpoint %v", got[1], mid)
	}
}

func TestMixSameColour(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	got := Mix(c, c)
	if channelDiff(got.R, c.R) > 1 || channelDiff(got.G, c.G) > 1 || channelDiff(got.B, c.B) > 1 {
		t.Errorf("Mix(c, c) = %v, want about %v", got, c)
	}
}

func TestNewGradient(t *testing.T) {
	g, err := NewGradient(RGB{R: 255}, RGB{B: 255}, 4)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Len())
	}

	hex := g.ToHex()
	if hex[0] != "#FF0000" || hex[3] != "#0000FF" {
		t.Errorf("ToHex() = %v", hex)
	}

	visited := 0
	for i := range g.All() {
		visited++
		if i == 1 {
			break
		}
	}
	if visited != 2 {
		t.Errorf("All() visited %d colours before break, want 2", visited)
	}

	if _, err := NewGradient(RGB{}, RGB{}, 1); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("NewGradient(count=1) error = %v, want ErrInvalidCount", err)
	}
}

func TestGradientToJSON(t *testing.T) {
	g, err := NewGradient(RGB{R: 10, G: 5, B: 255}, White, 3)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}

	data, err := g.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded GradientJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if decoded.Count != 3 || len(decoded.Colours) != 3 {
		t.Errorf("decoded count = %d (%d colours), want 3", decoded.Count, len(decoded.Colours))
	}
	if decoded.From != "#0A05FF" || decoded.To != "#FFFFFF" {
		t.Errorf("decoded endpoints = %s -> %s", decoded.From, decoded.To)
	}
	if decoded.Colours[0].Hex != "#0A05FF" {
		t.Errorf("first colour hex = %s, want #0A05FF", decoded.Colours[0].Hex)
	}
}

func TestGradientString(t *testing.T) {
	g := &Gradient{}
	if got := g.String(); got != "Empty gradient" {
		t.Errorf("String() = %q, want %q", got, "Empty gradient")
	}

	g, _ = NewGradient(RGB{}, White, 2)
	out := g.String()
	if !strings.Contains(out, "#000000") || !strings.Contains(out, "#FFFFFF") {
		t.Errorf("String() = %q, want both endpoints", out)
	}
}
