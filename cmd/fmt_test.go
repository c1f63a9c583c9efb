package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// Helper function to create a temporary ledger file
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	name := filepath.Join(tmp, "test_ledger.jsonl")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp ledger: %v", err)
	}
	return name
}

func useLedger(t *testing.T, path string) {
	t.Helper()
	old := ledgerFile
	ledgerFile = &path
	t.Cleanup(func() { ledgerFile = old })
}

func TestFmtInPlaceCanonicalizes(t *testing.T) {
	// out of order, with unstable key order in the card line
	original := `{"kind":"transaction","id":"t2","description":"later","amount":20,"currency":"BRL","type":"expense","category":"Outros","date":"2024-03-10","is_paid":false}
{"closing_day":5,"kind":"card","id":"visa","name":"Visa","credit_limit":2000,"currency":"BRL","due_day":12}
{"kind":"transaction","id":"t1","description":"earlier","amount":10,"currency":"BRL","type":"expense","category":"Outros","date":"2024-03-01","is_paid":false}
`
	want := `{"kind":"card","id":"visa","name":"Visa","credit_limit":2000,"currency":"BRL","closing_day":5,"due_day":12}
{"kind":"transaction","id":"t1","description":"earlier","amount":10,"currency":"BRL","type":"expense","category":"Outros","date":"2024-03-01","is_paid":false}
{"kind":"transaction","id":"t2","description":"later","amount":20,"currency":"BRL","type":"expense","category":"Outros","date":"2024-03-10","is_paid":false}
`

	tmp := createTempLedger(t, original)
	useLedger(t, tmp)

	c := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)

	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	got, err := os.ReadFile(tmp)
	if err != nil {
		t.Fatalf("Failed to read formatted ledger: %v", err)
	}
	if strings.TrimSpace(string(got)) != strings.TrimSpace(want) {
		t.Errorf("canonical form mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestFmtToFileOutput(t *testing.T) {
	tmp := createTempLedger(t, `{"kind":"transaction","id":"t1","description":"only","amount":10,"currency":"BRL","type":"expense","category":"Outros","date":"2024-03-01","is_paid":false}
`)
	useLedger(t, tmp)
	out := filepath.Join(t.TempDir(), "out.jsonl")

	c := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	f.Set("o", out)

	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(got), `"id":"t1"`) {
		t.Errorf("output file misses the transaction:\n%s", got)
	}
	// the input ledger is untouched when -o is given
	original, _ := os.ReadFile(tmp)
	if !strings.Contains(string(original), `"id":"t1"`) {
		t.Errorf("input ledger was modified")
	}
}
