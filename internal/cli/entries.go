package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/semmy-space/lockbox/internal/config"
	"github.com/semmy-space/lockbox/internal/output"
)

// validateKey rejects empty or whitespace-only keys before they hit the
// platform driver, which would otherwise report a confusing status.
func validateKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", &output.CLIError{
			Message:  "Credential key must not be empty",
			ExitCode: output.ExitUsage,
		}
	}
	return key, nil
}

// SetCmd implements the set command
type SetCmd struct {
	Key   string  `arg:"" help:"Credential key"`
	Value *string `arg:"" optional:"" help:"Credential value (omit to read from stdin or prompt)"`
	Stdin bool    `help:"Read the value from stdin"`
}

// Run executes the set command
func (cmd *SetCmd) Run(sp *StoreProvider, globals *Globals) error {
	key, err := validateKey(cmd.Key)
	if err != nil {
		return err
	}

	value, err := readValue(cmd.Value, cmd.Stdin, globals)
	if err != nil {
		return err
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	if err := store.Store(key, value); err != nil {
		return vaultError(err)
	}

	fmt.Fprintf(os.Stderr, "Stored %s\n", key)
	return nil
}

// GetCmd implements the get command
type GetCmd struct {
	Key string `arg:"" help:"Credential key"`
}

// Run executes the get command
func (cmd *GetCmd) Run(sp *StoreProvider, fp *FormatterProvider, globals *Globals, cfg *config.Config) error {
	key, err := validateKey(cmd.Key)
	if err != nil {
		return err
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	value, err := store.Retrieve(key)
	if err != nil {
		return vaultError(err)
	}

	if globals.ResolvedOutput(cfg) == "json" {
		type entry struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		}
		return fp.Formatter.Print(entry{Key: key, Value: value})
	}

	// Raw value on stdout so `lockbox get key | ...` composes
	fmt.Println(value)
	return nil
}

// UpdateCmd implements the update command
type UpdateCmd struct {
	Key   string  `arg:"" help:"Credential key"`
	Value *string `arg:"" optional:"" help:"New value (omit to read from stdin or prompt)"`
	Stdin bool    `help:"Read the value from stdin"`
}

// Run executes the update command
func (cmd *UpdateCmd) Run(sp *StoreProvider, globals *Globals) error {
	key, err := validateKey(cmd.Key)
	if err != nil {
		return err
	}

	value, err := readValue(cmd.Value, cmd.Stdin, globals)
	if err != nil {
		return err
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	if err := store.Update(key, value); err != nil {
		return vaultError(err)
	}

	fmt.Fprintf(os.Stderr, "Updated %s\n", key)
	return nil
}

// RmCmd implements the rm command
type RmCmd struct {
	Key string `arg:"" help:"Credential key"`
}

// Run executes the rm command
func (cmd *RmCmd) Run(sp *StoreProvider, globals *Globals) error {
	key, err := validateKey(cmd.Key)
	if err != nil {
		return err
	}

	ok, err := confirm(fmt.Sprintf("Delete credential %q?", key), globals)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Aborted")
		return nil
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	if err := store.Delete(key); err != nil {
		return vaultError(err)
	}

	fmt.Fprintf(os.Stderr, "Deleted %s\n", key)
	return nil
}

// LsCmd implements the ls command
type LsCmd struct{}

// Run executes the ls command
func (cmd *LsCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	keys, err := store.Keys()
	if err != nil {
		return vaultError(err)
	}

	type keyRow struct {
		Key string
	}
	rows := make([]keyRow, len(keys))
	for i, k := range keys {
		rows[i] = keyRow{Key: k}
	}

	cols := []output.Column{
		{Name: "Key", Key: "Key"},
	}

	return fp.Formatter.PrintList(rows, cols)
}
