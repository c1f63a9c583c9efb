package grana

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file handles the legacy backup format: the original application
// exports its whole state as one JSON document. Collections may sit at the
// top level or under a "data" envelope depending on the export version, so
// they are located by path rather than by a fixed struct.

// collection finds the first matching JSON path and returns its elements.
func collection(doc any, paths ...string) []any {
	for _, path := range paths {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			continue
		}
		if list, ok := v.([]any); ok {
			return list
		}
	}
	return nil
}

// ImportBackup reads a legacy backup document and returns a validated ledger.
//
// Row shapes mirror the persisted field names, so each element round-trips
// through JSON into the native record types. Invalid transactions abort the
// import: a backup is either trusted wholesale or not at all.
func ImportBackup(r io.Reader) (*Ledger, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse backup document: %w", err)
	}

	ledger := NewLedger()

	for _, el := range collection(doc, "$.cards", "$.data.cards") {
		var c CreditCard
		if err := reencode(el, &c); err != nil {
			return nil, fmt.Errorf("cannot import card: %w", err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid card %q in backup: %w", c.Name, err)
		}
		ledger.AddCard(c)
	}

	for _, el := range collection(doc, "$.accounts", "$.data.accounts") {
		var a Account
		if err := reencode(el, &a); err != nil {
			return nil, fmt.Errorf("cannot import account: %w", err)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid account %q in backup: %w", a.Name, err)
		}
		ledger.AddAccount(a)
	}

	if v, err := jsonpath.Get("$.userCategories", doc); err == nil {
		var u UserCategories
		if err := reencode(v, &u); err != nil {
			return nil, fmt.Errorf("cannot import categories: %w", err)
		}
		ledger.SetCategories(u)
	}

	var txs []Transaction
	for _, el := range collection(doc, "$.transactions", "$.data.transactions") {
		var tx Transaction
		if err := reencode(el, &tx); err != nil {
			return nil, fmt.Errorf("cannot import transaction: %w", err)
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction %q in backup: %w", tx.Description, err)
		}
		txs = append(txs, tx)
	}
	ledger.Append(txs...)

	return ledger, nil
}

// reencode funnels a decoded JSON value into a typed record via its own
// UnmarshalJSON.
func reencode(el any, v any) error {
	raw, err := json.Marshal(el)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
