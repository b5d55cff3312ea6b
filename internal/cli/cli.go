package cli

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/semmy-space/lockbox/internal/config"
	"github.com/semmy-space/lockbox/internal/output"
	"github.com/semmy-space/lockbox/internal/vault"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure
type CLI struct {
	Globals

	Set     SetCmd     `cmd:"" help:"Store a new credential"`
	Get     GetCmd     `cmd:"" help:"Retrieve a credential value"`
	Update  UpdateCmd  `cmd:"" help:"Overwrite an existing credential"`
	Rm      RmCmd      `cmd:"" aliases:"delete" help:"Delete a credential"`
	Ls      LsCmd      `cmd:"" aliases:"list" help:"List stored credential keys"`
	Export  ExportCmd  `cmd:"" help:"Export credentials to JSON or YAML"`
	Import  ImportCmd  `cmd:"" help:"Import credentials from JSON or YAML"`
	Config  ConfigCmd  `cmd:"" help:"Configuration commands"`
	Info    InfoCmd    `cmd:"" help:"Show the active storage backend and paths"`
	Setup   SetupCmd   `cmd:"" help:"Interactive first-run setup"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// AfterApply hook runs once flag values have been assigned, before any
// command execution. It loads config, resolves the backend and service,
// creates the formatter, and binds dependencies. It must not be BeforeApply:
// that hook fires before kong applies parsed values, so the global flags
// would still hold their defaults here.
func (c *CLI) AfterApply(ctx *kong.Context) error {
	// Load config from XDG path (returns defaults if missing)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Resolve backend: CLI flag > config > "auto" default
	backend := c.Globals.Backend
	if backend == "" && cfg.Backend != "" {
		backend = cfg.Backend
	}
	if backend == "" {
		backend = "auto"
	}
	cfg.Backend = backend

	// Resolve service namespace: CLI flag > config > "lockbox" default
	if c.Globals.Service != "" {
		cfg.Service = c.Globals.Service
	}

	// Create output formatter
	formatter := &FormatterProvider{
		Formatter: output.New(c.ResolvedOutput(cfg)),
	}

	// Bind dependencies to kong context
	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(&c.Globals)
	ctx.Bind(NewStoreProvider(cfg))

	return nil
}

// InfoCmd reports which backend serves vault operations and where state lives.
type InfoCmd struct{}

// Run executes the info command
func (cmd *InfoCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	type backendInfo struct {
		Configured  string
		Effective   string
		Service     string
		Description string
		ConfigPath  string
		DataDir     string
	}

	effective := cfg.Backend
	if effective == "auto" {
		effective = "keyring"
		if vault.IsWSL() || vault.IsHeadless() {
			effective = "file"
		}
	}

	desc, err := config.GetBackend(effective)
	if err != nil {
		return &output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitConfigError,
		}
	}

	return fp.Formatter.Print(backendInfo{
		Configured:  cfg.Backend,
		Effective:   effective,
		Service:     cfg.ResolvedService(),
		Description: desc.Description,
		ConfigPath:  config.ConfigPath(),
		DataDir:     config.DataDir(),
	})
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("lockbox version " + version)
	return nil
}
