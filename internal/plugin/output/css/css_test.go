package css

import (
	"strings"
	"testing"

	"github.com/jmylchreest/rolegen/internal/colour"
	outputtesting "github.com/jmylchreest/rolegen/internal/plugin/output/testing"
)

func TestCSSPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, New(), outputtesting.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{"gradient.css"},
	})
}

func TestCSSContent(t *testing.T) {
	g, err := colour.NewGradient(colour.RGB{R: 10, G: 5, B: 255}, colour.White, 3)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}

	p := New()
	p.prefix = "role"
	files, err := p.Generate(g)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	css := string(files["gradient.css"])
	for _, want := range []string{
		":root {",
		"--role-1: #0A05FF;",
		"--role-3: #FFFFFF;",
		"--role: linear-gradient(to right, var(--role-1) 0.00%, var(--role-2) 50.00%, var(--role-3) 100.00%);",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("gradient.css missing %q\n%s", want, css)
		}
	}
	if strings.Contains(css, "--role-4") {
		t.Errorf("gradient.css has more stops than the gradient:\n%s", css)
	}
}

func TestCSSValueFormats(t *testing.T) {
	g, err := colour.NewGradient(colour.RGB{R: 255}, colour.RGB{B: 255}, 2)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}

	tests := []struct {
		format string
		first  string
		last   string
	}{
		{format: "hex", first: "--gradient-1: #FF0000;", last: "--gradient-2: #0000FF;"},
		{format: "rgb", first: "--gradient-1: rgb(255, 0, 0);", last: "--gradient-2: rgb(0, 0, 255);"},
		{format: "hsl", first: "--gradient-1: hsl(0.0, 100.0%, 50.0%);", last: "--gradient-2: hsl(240.0, 100.0%, 50.0%);"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			p := New()
			p.format = tt.format
			files, err := p.Generate(g)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			css := string(files["gradient.css"])
			if !strings.Contains(css, tt.first) || !strings.Contains(css, tt.last) {
				t.Errorf("gradient.css missing %q or %q\n%s", tt.first, tt.last, css)
			}
			if strings.Contains(css, "100.00%,") {
				t.Errorf("gradient.css has a trailing separator after the last stop:\n%s", css)
			}
		})
	}
}

func TestCSSValidate(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		selector string
		format   string
		wantErr  bool
	}{
		{name: "defaults", prefix: "gradient", selector: ":root", format: "hex"},
		{name: "prefix with dash", prefix: "role-colour", selector: ".roles", format: "rgb"},
		{name: "hsl format", prefix: "gradient", selector: ":root", format: "hsl"},
		{name: "prefix starting with digit", prefix: "1bad", selector: ":root", format: "hex", wantErr: true},
		{name: "prefix with space", prefix: "bad prefix", selector: ":root", format: "hex", wantErr: true},
		{name: "empty selector", prefix: "ok", selector: "", format: "hex", wantErr: true},
		{name: "unknown format", prefix: "ok", selector: ":root", format: "hsv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.prefix = tt.prefix
			p.selector = tt.selector
			p.format = tt.format
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
