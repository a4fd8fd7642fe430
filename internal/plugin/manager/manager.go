// Package manager provides output plugin management with configuration support.
package manager

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/rolegen/internal/plugin/output"
	"github.com/jmylchreest/rolegen/internal/plugin/output/css"
	"github.com/jmylchreest/rolegen/internal/plugin/output/discord"
	"github.com/jmylchreest/rolegen/internal/plugin/output/swatch"
)

// Environment variables read by WithEnvConfig.
const (
	EnvEnabledOutputs  = "ROLEGEN_ENABLED_OUTPUTS"
	EnvDisabledOutputs = "ROLEGEN_DISABLED_OUTPUTS"
)

// All selects every output that is not disabled.
const All = "all"

// Config holds plugin configuration.
type Config struct {
	// DisabledOutputs is a list of output plugin names to disable.
	DisabledOutputs []string

	// EnabledOutputs is a list of output plugin names to explicitly enable.
	// If set, only these plugins are enabled (whitelist mode).
	EnabledOutputs []string
}

// Builder provides a fluent interface for constructing a Manager with configuration.
type Builder struct {
	config   Config
	registry *output.Registry
	logger   hclog.Logger
	useEnv   bool
	builtins bool
}

// NewBuilder creates a new Manager builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		registry: output.NewRegistry(),
		logger:   hclog.NewNullLogger(),
		builtins: true,
	}
}

// WithConfig sets the configuration for the manager.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from environment variables.
// Reads ROLEGEN_ENABLED_OUTPUTS and ROLEGEN_DISABLED_OUTPUTS.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLogger sets the logger handed to plugins that accept one.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithRegistry replaces the built-in plugins with a custom registry (useful for testing).
func (b *Builder) WithRegistry(registry *output.Registry) *Builder {
	b.registry = registry
	b.builtins = false
	return b
}

// Build constructs the Manager with the configured settings.
// Environment configuration overrides values passed to WithConfig.
func (b *Builder) Build() *Manager {
	config := b.config

	if b.useEnv {
		if disabled := os.Getenv(EnvDisabledOutputs); disabled != "" {
			config.DisabledOutputs = parsePluginList(disabled)
		}
		if enabled := os.Getenv(EnvEnabledOutputs); enabled != "" {
			config.EnabledOutputs = parsePluginList(enabled)
		}
	}

	m := &Manager{
		config:   config,
		registry: b.registry,
		logger:   b.logger,
	}

	if b.builtins {
		m.registerBuiltinPlugins()
	}

	return m
}

// Manager manages output plugin enable/disable state and owns the plugin registry.
type Manager struct {
	config   Config
	registry *output.Registry
	logger   hclog.Logger
}

// registerBuiltinPlugins registers all built-in plugins.
func (m *Manager) registerBuiltinPlugins() {
	m.registry.Register(css.New())
	m.registry.Register(discord.New())
	m.registry.Register(swatch.New())
}

// Registry returns the output plugin registry.
func (m *Manager) Registry() *output.Registry {
	return m.registry
}

// GetOutputPlugin retrieves an output plugin by name.
func (m *Manager) GetOutputPlugin(name string) (output.Plugin, bool) {
	return m.registry.Get(name)
}

// AllOutputPlugins returns all registered output plugins (including disabled).
func (m *Manager) AllOutputPlugins() map[string]output.Plugin {
	return m.registry.All()
}

// IsOutputDisabled reports whether configuration excludes the named plugin.
func (m *Manager) IsOutputDisabled(name string) bool {
	if slices.Contains(m.config.DisabledOutputs, All) || slices.Contains(m.config.DisabledOutputs, name) {
		return true
	}

	// Whitelist mode.
	if len(m.config.EnabledOutputs) > 0 && !slices.Contains(m.config.EnabledOutputs, All) {
		return !slices.Contains(m.config.EnabledOutputs, name)
	}

	return false
}

// SelectOutputs resolves the requested plugin names into plugins ready to run.
// "all" selects every plugin that is not disabled. Selected plugins that
// accept a logger receive a sub-logger named after the plugin.
func (m *Manager) SelectOutputs(names []string) ([]output.Plugin, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var selected []output.Plugin

	if len(names) == 1 && names[0] == All {
		for _, name := range m.registry.List() {
			if m.IsOutputDisabled(name) {
				m.logger.Debug("skipping disabled output", "plugin", name)
				continue
			}
			plugin, _ := m.registry.Get(name)
			selected = append(selected, plugin)
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("no output plugins available (all plugins are disabled)")
		}
	} else {
		for _, name := range names {
			plugin, ok := m.registry.Get(name)
			if !ok {
				return nil, fmt.Errorf("unknown output plugin: %s (available: %s)", name, strings.Join(m.registry.List(), ", "))
			}
			if m.IsOutputDisabled(name) {
				return nil, fmt.Errorf("plugin %s is disabled (check %s)", name, EnvDisabledOutputs)
			}
			selected = append(selected, plugin)
		}
	}

	for _, plugin := range selected {
		if vp, ok := plugin.(output.VerbosePlugin); ok {
			vp.SetLogger(m.logger.Named(plugin.Name()))
		}
	}

	return selected, nil
}

// parsePluginList splits a comma separated list, dropping blanks.
func parsePluginList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
