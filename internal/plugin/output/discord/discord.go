// Package discord provides an output plugin that writes Discord role colours.
//
// Discord stores role colours as a single 24-bit integer, so each gradient stop
// is emitted both as that integer and as the #RRGGBB string shown in the client.
package discord

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/rolegen/internal/colour"
)

// maxRoles is the number of roles Discord allows on a single server.
const maxRoles = 250

// Role is a single entry of the generated roles.json.
type Role struct {
	Name     string `json:"name"`
	Color    int    `json:"color"`
	Hex      string `json:"hex"`
	Position int    `json:"position"`
}

// Plugin implements the output.Plugin interface for Discord role manifests.
type Plugin struct {
	prefix    string
	reverse   bool
	outputDir string
	logger    hclog.Logger
}

// New creates a new Discord output plugin.
func New() *Plugin {
	return &Plugin{
		prefix:    "Role",
		outputDir: ".",
		logger:    hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "discord"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a Discord role colour manifest (roles.json)"
}

// SetLogger sets the logger used while generating.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p.logger = logger
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.prefix, "discord.prefix", p.prefix, "Role name prefix (roles are numbered from 1)")
	cmd.Flags().BoolVar(&p.reverse, "discord.reverse", false, "Give the last gradient colour the highest role position")
	cmd.Flags().StringVar(&p.outputDir, "discord.output-dir", p.outputDir, "Output directory")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if strings.TrimSpace(p.prefix) == "" {
		return fmt.Errorf("role name prefix cannot be empty")
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

// Roles converts a gradient into Discord roles.
// Positions count down so the first colour sits highest in the role list,
// unless reverse is set.
func (p *Plugin) Roles(gradient *colour.Gradient) []Role {
	n := gradient.Len()
	roles := make([]Role, 0, n)
	for i, c := range gradient.All() {
		position := n - i
		if p.reverse {
			position = i + 1
		}
		roles = append(roles, Role{
			Name:     fmt.Sprintf("%s %d", p.prefix, i+1),
			Color:    c.Decimal(),
			Hex:      c.Hex(),
			Position: position,
		})
	}
	return roles
}

// Generate creates roles.json from the gradient.
func (p *Plugin) Generate(gradient *colour.Gradient) (map[string][]byte, error) {
	if gradient == nil {
		return nil, fmt.Errorf("gradient cannot be nil")
	}

	if gradient.Len() > maxRoles {
		p.logger.Warn("gradient has more colours than Discord allows roles", "colours", gradient.Len(), "limit", maxRoles)
	}

	roles := p.Roles(gradient)
	p.logger.Debug("generated discord roles", "count", len(roles), "prefix", p.prefix)

	data, err := json.MarshalIndent(roles, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roles: %w", err)
	}

	return map[string][]byte{"roles.json": append(data, '\n')}, nil
}
