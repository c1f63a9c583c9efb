package grana

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleLedger() *Ledger {
	l := NewLedger()
	l.SetName("familia")
	l.AddCard(CreditCard{ID: "visa", Name: "Visa", Color: "#7c3aed", CreditLimit: R(2000), ClosingDay: 5, DueDay: 12, AccountID: "conta"})
	l.AddAccount(Account{ID: "conta", Name: "Corrente", Type: Checking, InitialBalance: R(1000)})
	cats := NewUserCategories()
	cats.Expense = []string{"Mercado", "Moradia"}
	cats.Payers = []string{"Ana"}
	l.SetCategories(cats)
	l.Append(
		paid(expense("t2", "rent", 1200, day(time.March, 5))),
		paid(split(expense("t1", "market", 100, day(time.March, 2)), 60, 40, "Ana")),
		income("t3", "salary", 3000, day(time.March, 1)),
	)
	return l
}

func TestEncodeDecodeLedger_RoundTrip(t *testing.T) {
	want := sampleLedger()

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, want); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	wantTxs, gotTxs := want.AllTransactions(), got.AllTransactions()
	if len(gotTxs) != len(wantTxs) {
		t.Fatalf("decoded %d transactions, want %d", len(gotTxs), len(wantTxs))
	}
	for i := range wantTxs {
		if !wantTxs[i].Equal(gotTxs[i]) {
			t.Errorf("transaction %d changed:\n got %+v\nwant %+v", i, gotTxs[i], wantTxs[i])
		}
	}
	if len(got.Cards()) != 1 || got.Card("visa") == nil {
		t.Errorf("cards did not survive the round trip: %+v", got.Cards())
	}
	if len(got.Accounts()) != 1 || got.Account("conta") == nil {
		t.Errorf("accounts did not survive the round trip: %+v", got.Accounts())
	}
	if !got.Categories().HasPayer("Ana") {
		t.Errorf("category registry did not survive the round trip")
	}
}

func TestEncodeLedger_CanonicalOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, sampleLedger()); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	wantKinds := []string{"card", "account", "categories", "transaction", "transaction", "transaction"}
	if len(lines) != len(wantKinds) {
		t.Fatalf("encoded %d lines, want %d:\n%s", len(lines), len(wantKinds), buf.String())
	}
	for i, k := range wantKinds {
		if !strings.HasPrefix(lines[i], `{"kind":"`+k+`"`) {
			t.Errorf("line %d = %s, want kind %q", i, lines[i], k)
		}
	}
	// transactions come out chronologically whatever the append order
	if !strings.Contains(lines[3], `"id":"t3"`) || !strings.Contains(lines[5], `"id":"t2"`) {
		t.Errorf("transactions not in chronological order:\n%s", strings.Join(lines[3:], "\n"))
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unknown kind", `{"kind":"wallet","id":"x"}`},
		{"not json", `kind: transaction`},
		{"bad date", `{"kind":"transaction","id":"x","description":"d","amount":1,"type":"expense","category":"c","date":"not-a-date","is_paid":false}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeLedger() accepted %s", tc.input)
			}
		})
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	input := "\n" + `{"kind":"transaction","id":"x","description":"ok","amount":10,"currency":"BRL","type":"expense","category":"Outros","date":"2024-03-01","is_paid":false}` + "\n\n"
	got, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if got.Transaction("x") == nil {
		t.Errorf("transaction lost among empty lines")
	}
}
