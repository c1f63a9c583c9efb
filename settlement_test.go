package grana

import (
	"testing"
	"time"
)

func TestPayerSettlement(t *testing.T) {
	categories := NewUserCategories()
	categories.Payers = []string{"Ana", "Bia", "Carlos"}

	march := NewRange(day(time.March, 1), day(time.March, 31))
	txs := []Transaction{
		paid(split(expense("a", "dinner", 100, day(time.March, 5)), 60, 40, "Ana")),
		split(expense("b", "market", 80, day(time.March, 10)), 50, 30, "Ana"),
		split(expense("c", "trip", 200, day(time.March, 15)), 100, 100, "Bia"),
		// outside the range, must not count
		split(expense("d", "april dinner", 90, day(time.April, 2)), 45, 45, "Ana"),
		// partner not in the registry, not part of the settlement view
		split(expense("e", "stranger", 50, day(time.March, 20)), 25, 25, "Duda"),
		// unsplit transactions never settle
		paid(expense("f", "own expense", 70, day(time.March, 21))),
	}

	got := PayerSettlement(categories, txs, march)
	if len(got) != 3 {
		t.Fatalf("PayerSettlement() returned %d payers, want every registered payer (3)", len(got))
	}

	ana := got[0]
	if ana.Payer != "Ana" {
		t.Fatalf("first settlement is %q, want registry order starting with Ana", ana.Payer)
	}
	if !ana.TotalToReceive.Equal(R(70)) {
		t.Errorf("Ana total = %s, want %s", ana.TotalToReceive, R(70))
	}
	if !ana.Paid.Equal(R(40)) {
		t.Errorf("Ana paid = %s, want %s", ana.Paid, R(40))
	}
	if !ana.Pending.Equal(R(30)) {
		t.Errorf("Ana pending = %s, want %s", ana.Pending, R(30))
	}

	bia := got[1]
	if !bia.TotalToReceive.Equal(R(100)) || !bia.Pending.Equal(R(100)) {
		t.Errorf("Bia = %+v, want 100 pending", bia)
	}

	// a payer with zero transactions still appears, zero-filled
	carlos := got[2]
	if carlos.Payer != "Carlos" {
		t.Fatalf("third settlement is %q, want Carlos", carlos.Payer)
	}
	if !carlos.TotalToReceive.IsZero() || !carlos.Paid.IsZero() || !carlos.Pending.IsZero() {
		t.Errorf("Carlos = %+v, want all-zero totals", carlos)
	}
}
