package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/semmy-space/lockbox/internal/config"
	"github.com/semmy-space/lockbox/internal/output"
	"github.com/semmy-space/lockbox/internal/vault"
)

// SetupCmd implements the interactive setup wizard
type SetupCmd struct{}

// Run executes the setup wizard
func (cmd *SetupCmd) Run(cfg *config.Config, globals *Globals) error {
	if globals.NoInput {
		return &output.CLIError{
			Message:  "Setup is interactive and prompts are disabled",
			ExitCode: output.ExitUsage,
			Hint:     "Configure directly: lockbox config set backend auto",
		}
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  lockbox — Credential Vault Setup\n")
	fmt.Fprintf(os.Stderr, "  ================================\n\n")

	// Step 1: Backend
	fmt.Fprintf(os.Stderr, "  Step 1: Choose a storage backend\n\n")
	fmt.Fprintf(os.Stderr, "    auto     keyring first, encrypted file fallback\n")
	fmt.Fprintf(os.Stderr, "    keyring  OS keyring only\n")
	fmt.Fprintf(os.Stderr, "    file     AES-256-GCM encrypted file\n\n")

	if vault.IsWSL() || vault.IsHeadless() {
		fmt.Fprintf(os.Stderr, "  Note: WSL/headless detected, 'auto' will use the encrypted file\n\n")
	}

	current := cfg.Backend
	if current == "" {
		current = "auto"
	}

	backend, err := promptChoice(reader, fmt.Sprintf("  Backend [%s]: ", current), current, config.ValidBackends())
	if err != nil {
		return err
	}

	// Step 2: Service namespace
	fmt.Fprintf(os.Stderr, "\n  Step 2: Vault service namespace\n")
	fmt.Fprintf(os.Stderr, "  Entries from different namespaces never collide.\n\n")

	service := cfg.ResolvedService()
	fmt.Fprintf(os.Stderr, "  Service [%s]: ", service)
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	if line = strings.TrimSpace(line); line != "" {
		service = line
	}

	// Persist
	cfg.Backend = backend
	if service != config.DefaultService {
		cfg.Service = service
	}
	if err := cfg.Save(); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to save config: %v", err),
			ExitCode: output.ExitConfigError,
		}
	}

	fmt.Fprintf(os.Stderr, "\n  Saved to %s\n", config.ConfigPath())
	fmt.Fprintf(os.Stderr, "  Try: lockbox set my-first-key\n\n")
	return nil
}

// promptChoice reads a line and validates it against options; empty keeps the
// default.
func promptChoice(reader *bufio.Reader, prompt, def string, options []string) (string, error) {
	for {
		fmt.Fprint(os.Stderr, prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}
		for _, opt := range options {
			if line == opt {
				return line, nil
			}
		}
		fmt.Fprintf(os.Stderr, "  Invalid choice %q (options: %s)\n", line, strings.Join(options, ", "))
	}
}
