package discord

import (
	"encoding/json"
	"testing"

	"github.com/jmylchreest/rolegen/internal/colour"
	outputtesting "github.com/jmylchreest/rolegen/internal/plugin/output/testing"
)

func TestDiscordPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, New(), outputtesting.TestConfig{
		ExpectedName:  "discord",
		ExpectedFiles: []string{"roles.json"},
	})
}

func TestDiscordRoles(t *testing.T) {
	g, err := colour.NewGradient(colour.RGB{R: 255}, colour.RGB{B: 255}, 3)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}

	p := New()
	files, err := p.Generate(g)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var roles []Role
	if err := json.Unmarshal(files["roles.json"], &roles); err != nil {
		t.Fatalf("roles.json is not valid JSON: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("got %d roles, want 3", len(roles))
	}

	first, last := roles[0], roles[2]
	if first.Name != "Role 1" || first.Color != 0xFF0000 || first.Hex != "#FF0000" || first.Position != 3 {
		t.Errorf("first role = %+v", first)
	}
	if last.Name != "Role 3" || last.Color != 0x0000FF || last.Hex != "#0000FF" || last.Position != 1 {
		t.Errorf("last role = %+v", last)
	}
}

func TestDiscordReverse(t *testing.T) {
	g, err := colour.NewGradient(colour.RGB{R: 255}, colour.RGB{B: 255}, 4)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}

	p := New()
	p.reverse = true
	p.prefix = "Tier"

	roles := p.Roles(g)
	for i, r := range roles {
		if r.Position != i+1 {
			t.Errorf("role %d position = %d, want %d", i, r.Position, i+1)
		}
	}
	if roles[3].Name != "Tier 4" {
		t.Errorf("roles[3].Name = %s, want Tier 4", roles[3].Name)
	}
}

func TestDiscordValidate(t *testing.T) {
	p := New()
	p.prefix = "   "
	if err := p.Validate(); err == nil {
		t.Error("Validate() with blank prefix should fail")
	}
}
