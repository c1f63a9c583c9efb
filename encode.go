package grana

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// kind is the line discriminator of the ledger file format.
type kind string

const (
	kindTransaction kind = "transaction"
	kindCard        kind = "card"
	kindAccount     kind = "account"
	kindCategories  kind = "categories"
)

// encodeLine marshals one record to JSON, prefixed with its kind, and writes
// it followed by a newline in JSONL format.
func encodeLine(w io.Writer, k kind, v any) error {
	var ow jsonObjectWriter
	ow.Append("kind", k)
	ow.EmbedFrom(v)
	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal %s line: %w", k, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s line: %w", k, err)
	}
	return nil
}

// EncodeLedger persists a ledger to an io.Writer in canonical JSONL form:
// cards, then accounts, then the category registry, then transactions in
// chronological order (stable for same-day entries), each with alphabetically
// predictable keys.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for _, c := range ledger.cards {
		if err := encodeLine(w, kindCard, c); err != nil {
			return err
		}
	}
	for _, a := range ledger.accounts {
		if err := encodeLine(w, kindAccount, a); err != nil {
			return err
		}
	}
	if !ledger.categories.IsZero() {
		if err := encodeLine(w, kindCategories, ledger.categories); err != nil {
			return err
		}
	}
	for _, tx := range ledger.transactions {
		if err := encodeLine(w, kindTransaction, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a stream of JSONL ledger lines, decodes each into the
// matching record type, and returns a chronologically sorted ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind kind `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(line), err)
		}

		switch identifier.Kind {
		case kindTransaction:
			var tx Transaction
			if err := json.Unmarshal(line, &tx); err != nil {
				return nil, fmt.Errorf("could not decode transaction line: %w", err)
			}
			ledger.transactions = append(ledger.transactions, tx)
		case kindCard:
			var c CreditCard
			if err := json.Unmarshal(line, &c); err != nil {
				return nil, fmt.Errorf("could not decode card line: %w", err)
			}
			ledger.AddCard(c)
		case kindAccount:
			var a Account
			if err := json.Unmarshal(line, &a); err != nil {
				return nil, fmt.Errorf("could not decode account line: %w", err)
			}
			ledger.AddAccount(a)
		case kindCategories:
			var u UserCategories
			if err := json.Unmarshal(line, &u); err != nil {
				return nil, fmt.Errorf("could not decode categories line: %w", err)
			}
			ledger.categories = u
		default:
			return nil, fmt.Errorf("unknown ledger line kind: %q", identifier.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.stableSort()
	return ledger, nil
}
