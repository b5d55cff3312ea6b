package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/semmy-space/lockbox/internal/config"
)

// Globals holds global flags available to all commands
type Globals struct {
	Output  string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"LOCKBOX_OUTPUT"`
	Backend string `help:"Storage backend" default:"" enum:"auto,keyring,file," env:"LOCKBOX_BACKEND"`
	Service string `help:"Vault service namespace" default:"" env:"LOCKBOX_SERVICE"`
	Verbose bool   `help:"Verbose output" short:"v" env:"LOCKBOX_VERBOSE"`
	NoInput bool   `help:"Disable interactive prompts (fail instead)" env:"LOCKBOX_NO_INPUT"`
	Force   bool   `help:"Skip confirmation prompts for destructive operations" env:"LOCKBOX_FORCE"`
}

// ResolvedOutput returns the effective output mode
// "auto" consults config.default_output, then TTY detection:
// if stdout is TTY -> rich, else -> plain
func (g *Globals) ResolvedOutput(cfg *config.Config) string {
	if g.Output != "auto" {
		return g.Output
	}
	if cfg != nil && cfg.DefaultOutput != "" {
		return cfg.DefaultOutput
	}

	// Detect if stdout is a TTY
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}

	return "plain"
}
