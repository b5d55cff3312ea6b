package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/semmy-space/lockbox/internal/output"
	"github.com/semmy-space/lockbox/internal/vault"
)

// ExportCmd implements the export command
type ExportCmd struct {
	Format string `help:"Export format" default:"json" enum:"json,yaml"`
	File   string `help:"Write to a file instead of stdout" type:"path" short:"f" predictor:"file"`
}

// Run executes the export command
func (cmd *ExportCmd) Run(sp *StoreProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	keys, err := store.Keys()
	if err != nil {
		return vaultError(err)
	}

	entries := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := store.Retrieve(key)
		if err != nil {
			return vaultError(err)
		}
		entries[key] = value
	}

	var data []byte
	switch cmd.Format {
	case "yaml":
		data, err = yaml.Marshal(entries)
	default:
		data, err = json.MarshalIndent(entries, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to encode export: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	if cmd.File != "" {
		if err := os.WriteFile(cmd.File, data, 0600); err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to write export file: %v", err),
				ExitCode: output.ExitGeneral,
			}
		}
		fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", len(entries), cmd.File)
		return nil
	}

	fmt.Fprintf(os.Stderr, "Warning: export contains plaintext secrets\n")
	_, err = os.Stdout.Write(data)
	return err
}

// ImportCmd implements the import command
type ImportCmd struct {
	File      string `arg:"" optional:"" help:"File to import (omit to read stdin)" type:"path" predictor:"file"`
	Overwrite bool   `help:"Update entries whose keys already exist"`
}

// Run executes the import command
func (cmd *ImportCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	data, err := cmd.readInput()
	if err != nil {
		return err
	}

	entries, err := decodeEntries(data, cmd.File)
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to parse import: %v", err),
			ExitCode: output.ExitUsage,
		}
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	// Deterministic order so partial failures are reproducible
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stored, updated, skipped int
	for _, key := range keys {
		err := store.Store(key, entries[key])
		switch {
		case err == nil:
			stored++
		case errors.Is(err, vault.ErrDuplicate) && cmd.Overwrite:
			if err := store.Update(key, entries[key]); err != nil {
				return vaultError(err)
			}
			updated++
		case errors.Is(err, vault.ErrDuplicate):
			skipped++
		default:
			return vaultError(err)
		}
	}

	fmt.Fprintf(os.Stderr, "Imported %d entries (%d updated, %d skipped)\n", stored, updated, skipped)
	if skipped > 0 && !cmd.Overwrite {
		fp.Formatter.PrintHint("Pass --overwrite to update existing entries")
	}
	return nil
}

func (cmd *ImportCmd) readInput() ([]byte, error) {
	if cmd.File == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, &output.CLIError{
				Message:  fmt.Sprintf("Failed to read stdin: %v", err),
				ExitCode: output.ExitGeneral,
			}
		}
		return data, nil
	}

	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return nil, &output.CLIError{
			Message:  fmt.Sprintf("Failed to read import file: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}
	return data, nil
}

// decodeEntries parses a key/value document. The extension picks the codec;
// stdin and unknown extensions try JSON first, then YAML (JSON is valid YAML,
// so the fallback also covers sloppy .txt exports).
func decodeEntries(data []byte, filename string) (map[string]string, error) {
	entries := make(map[string]string)

	switch {
	case strings.HasSuffix(filename, ".yaml"), strings.HasSuffix(filename, ".yml"):
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	case strings.HasSuffix(filename, ".json"):
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			if yerr := yaml.Unmarshal(data, &entries); yerr != nil {
				return nil, err
			}
		}
	}

	return entries, nil
}
