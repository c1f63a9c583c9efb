package grana

import (
	"testing"
	"time"
)

func sampleLens() []Transaction {
	return []Transaction{
		income("salary", "monthly salary", 5000, day(time.May, 1)),
		expense("rent", "rent", 1500, day(time.May, 5)),
		split(expense("market", "groceries", 300, day(time.May, 8)), 200, 100, "Ana"),
		split(income("refund", "shared refund", 80, day(time.May, 9)), 50, 30, "Ana"),
	}
}

func TestSummarize_AllSelectionUsesFullAmounts(t *testing.T) {
	s := Summarize(sampleLens(), SelectAll())

	if !s.Income.Equal(R(5080)) {
		t.Errorf("Income = %s, want %s", s.Income, R(5080))
	}
	if !s.Expenses.Equal(R(1800)) {
		t.Errorf("Expenses = %s, want %s", s.Expenses, R(1800))
	}
	if !s.Balance.Equal(R(3280)) {
		t.Errorf("Balance = %s, want %s", s.Balance, R(3280))
	}
}

func TestSummarize_IndividualSelectionUsesUserParts(t *testing.T) {
	s := Summarize(sampleLens(), SelectIndividual())

	// split expense counts 200, split income counts 50; unsplit count in full
	if !s.Income.Equal(R(5050)) {
		t.Errorf("Income = %s, want %s", s.Income, R(5050))
	}
	if !s.Expenses.Equal(R(1700)) {
		t.Errorf("Expenses = %s, want %s", s.Expenses, R(1700))
	}
	if !s.Balance.Equal(R(3350)) {
		t.Errorf("Balance = %s, want %s", s.Balance, R(3350))
	}
}

func TestSummarize_SingleNamedPayerUsesPartnerParts(t *testing.T) {
	s := Summarize(sampleLens(), SelectPayers("Ana"))

	// splits contribute the partner part; unsplit transactions keep full amount
	if !s.Income.Equal(R(5030)) {
		t.Errorf("Income = %s, want %s", s.Income, R(5030))
	}
	if !s.Expenses.Equal(R(1600)) {
		t.Errorf("Expenses = %s, want %s", s.Expenses, R(1600))
	}
}

func TestSummarize_MultiSelectFallsBackToFullAmounts(t *testing.T) {
	full := Summarize(sampleLens(), SelectAll())
	multi := Summarize(sampleLens(), SelectPayers("Ana", "Bia"))

	if !multi.Income.Equal(full.Income) || !multi.Expenses.Equal(full.Expenses) {
		t.Errorf("multi-select summary %+v differs from full-amount summary %+v", multi, full)
	}
}

func TestSummarize_IsPure(t *testing.T) {
	txs := sampleLens()
	first := Summarize(txs, SelectIndividual())
	second := Summarize(txs, SelectIndividual())

	if !first.Balance.Equal(second.Balance) ||
		!first.Income.Equal(second.Income) ||
		!first.Expenses.Equal(second.Expenses) {
		t.Errorf("repeated Summarize() diverged: %+v vs %+v", first, second)
	}
	if !txs[2].Split.UserPart.Equal(R(200)) {
		t.Errorf("Summarize() mutated its input")
	}
}

func TestGroupByCard(t *testing.T) {
	cards := []CreditCard{
		{ID: "nubank", Name: "Nubank", CreditLimit: R(5000), ClosingDay: 3, DueDay: 10},
	}
	txs := []Transaction{
		func() Transaction { tx := expense("a", "streaming", 40, day(time.May, 1)); tx.CardID = "nubank"; return paid(tx) }(),
		func() Transaction {
			tx := split(expense("b", "shared dinner", 120, day(time.May, 2)), 70, 50, "Ana")
			tx.CardID = "nubank"
			return tx
		}(),
		func() Transaction {
			tx := split(expense("c", "anonymous split", 60, day(time.May, 3)), 30, 30, "")
			tx.CardID = "nubank"
			return paid(tx)
		}(),
		paid(expense("d", "cash lunch", 25, day(time.May, 4))),
		func() Transaction { tx := expense("e", "ghost card", 10, day(time.May, 5)); tx.CardID = "deleted"; return tx }(),
		paid(income("f", "income is ignored", 999, day(time.May, 6))),
	}

	groups := GroupByCard(txs, cards)
	if len(groups) != 2 {
		t.Fatalf("GroupByCard() returned %d groups, want 2", len(groups))
	}

	nubank := groups[0]
	if nubank.Key != "nubank" || nubank.Label != "Nubank" {
		t.Errorf("first group = %s/%s, want nubank/Nubank", nubank.Key, nubank.Label)
	}
	if !nubank.Total.Equal(R(220)) {
		t.Errorf("Nubank total = %s, want %s", nubank.Total, R(220))
	}
	if !nubank.UserPart.Equal(R(140)) { // 40 + 70 + 30
		t.Errorf("Nubank user part = %s, want %s", nubank.UserPart, R(140))
	}
	if !nubank.Others["Ana"].Equal(R(50)) {
		t.Errorf("Nubank others[Ana] = %s, want %s", nubank.Others["Ana"], R(50))
	}
	if !nubank.Others[UnknownPayer].Equal(R(30)) {
		t.Errorf("Nubank others[%s] = %s, want %s", UnknownPayer, nubank.Others[UnknownPayer], R(30))
	}
	if !nubank.HasPending {
		t.Errorf("Nubank group should be pending: transaction b is unpaid")
	}

	wallet := groups[1]
	if wallet.Key != NoCardKey || wallet.Label != WalletLabel {
		t.Errorf("second group = %s/%s, want %s/%s", wallet.Key, wallet.Label, NoCardKey, WalletLabel)
	}
	// the stale card reference folds into the wallet group
	if !wallet.Total.Equal(R(35)) {
		t.Errorf("wallet total = %s, want %s", wallet.Total, R(35))
	}
	if !wallet.HasPending {
		t.Errorf("wallet group should be pending: the ghost-card transaction is unpaid")
	}
}
