package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/grana-app/grana"
)

func TestAddRecordsTransaction(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "ledger.jsonl")
	useLedger(t, tmp)

	c := &addCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	f.Set("desc", "mercado")
	f.Set("amount", "230.50")
	f.Set("category", "Mercado")
	f.Set("d", "2024-03-02")
	f.Set("paid", "true")

	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	ledger, err := grana.LoadLedger(tmp)
	if err != nil {
		t.Fatalf("LoadLedger() error = %v", err)
	}
	txs := ledger.AllTransactions()
	if len(txs) != 1 {
		t.Fatalf("ledger holds %d transactions, want 1", len(txs))
	}
	got := txs[0]
	if got.Description != "mercado" || !got.Amount.Equal(grana.BRL(230.50)) || !got.IsPaid {
		t.Errorf("recorded transaction = %+v", got)
	}
	if got.ID == "" {
		t.Errorf("transaction id was not minted")
	}
}

func TestAddSplitValidation(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "ledger.jsonl")
	useLedger(t, tmp)

	c := &addCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	f.Set("desc", "jantar")
	f.Set("amount", "90")
	f.Set("partner", "Ana")
	f.Set("user-part", "60")
	f.Set("partner-part", "40") // 60+40 != 90

	if status := c.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Fatalf("Execute() = %v, want ExitFailure for mismatched split", status)
	}
}
