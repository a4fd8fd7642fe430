// Package testing provides shared test utilities for output plugins.
package testing

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/rolegen/internal/colour"
	"github.com/jmylchreest/rolegen/internal/plugin/output"
)

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return
}

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		if p.DefaultOutputDir() == "" {
			t.Error("DefaultOutputDir() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various gradients.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestGradient(t, 6))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateTwoStops", func(t *testing.T) {
		files, err := p.Generate(CreateTestGradient(t, 2))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(files) == 0 {
			t.Error("Generate() returned no files")
		}
	})

	t.Run("GenerateNilGradient", func(t *testing.T) {
		if _, err := p.Generate(nil); err == nil {
			t.Error("Generate() with nil gradient should return error")
		}
	})
}

// TestVerbosePlugin tests logger injection if the plugin supports it.
func TestVerbosePlugin(t *testing.T, p any) {
	vp, ok := p.(output.VerbosePlugin)
	if !ok {
		return
	}

	t.Run("SetLogger", func(_ *testing.T) {
		// Just test that it doesn't panic.
		vp.SetLogger(hclog.NewNullLogger())
		vp.SetLogger(nil)
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}

		p.RegisterFlags(cmd)

		expectedFlag := expectedFlagPrefix + ".output-dir"
		if cmd.Flags().Lookup(expectedFlag) == nil {
			t.Errorf("RegisterFlags() did not register %s flag", expectedFlag)
		}
	})
}

// CreateTestGradient creates a red to blue gradient with count stops.
func CreateTestGradient(t *testing.T, count int) *colour.Gradient {
	t.Helper()

	g, err := colour.NewGradient(colour.RGB{R: 255}, colour.RGB{B: 255}, count)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}
	return g
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestVerbosePlugin(t, p)
	TestFlags(t, p, config.ExpectedName)
}
