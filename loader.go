package grana

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadLedger opens, decodes, and names a ledger from a file path. A missing
// file surfaces as fs.ErrNotExist for the caller to decide whether an empty
// ledger is acceptable.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	ledger.name = strings.TrimSuffix(filepath.Base(path), ".jsonl")
	return ledger, nil
}

// SaveLedger writes a ledger to a file path in canonical JSONL form.
func SaveLedger(path string, ledger *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeLedger(f, ledger)
}

// FilePersister lands every committed ledger state into one JSONL file. It is
// the canonical Persister used by the CLI.
type FilePersister struct {
	Path string
}

func (p FilePersister) Persist(ledger *Ledger) error {
	return SaveLedger(p.Path, ledger)
}
