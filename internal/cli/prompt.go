package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/semmy-space/lockbox/internal/output"
)

// readValue resolves a credential value from, in order: the positional
// argument (nil when omitted, so an explicit empty string still counts),
// stdin (when --stdin is set or stdin is piped), or an interactive hidden
// prompt. With --no-input the prompt path fails instead.
func readValue(explicit *string, fromStdin bool, globals *Globals) (string, error) {
	if explicit != nil {
		return *explicit, nil
	}

	stdinIsTTY := term.IsTerminal(int(os.Stdin.Fd()))

	if fromStdin || !stdinIsTTY {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", &output.CLIError{
				Message:  fmt.Sprintf("Failed to read value from stdin: %v", err),
				ExitCode: output.ExitGeneral,
			}
		}
		// Strip a single trailing newline from `echo secret | lockbox set`
		return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
	}

	if globals.NoInput {
		return "", &output.CLIError{
			Message:  "No value given and interactive prompts are disabled",
			ExitCode: output.ExitUsage,
			Hint:     "Pass the value as an argument or via --stdin",
		}
	}

	fmt.Fprint(os.Stderr, "Value (hidden): ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", &output.CLIError{
			Message:  fmt.Sprintf("Failed to read value: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	return string(secret), nil
}

// confirm asks a yes/no question on stderr. Force skips the prompt; NoInput
// refuses it.
func confirm(prompt string, globals *Globals) (bool, error) {
	if globals.Force {
		return true, nil
	}
	if globals.NoInput {
		return false, &output.CLIError{
			Message:  "Confirmation required but interactive prompts are disabled",
			ExitCode: output.ExitUsage,
			Hint:     "Pass --force to skip confirmation",
		}
	}

	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
