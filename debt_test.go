package grana

import (
	"testing"
	"time"
)

func cardTx(id string, amount float64, on Date, isPaid bool) Transaction {
	tx := expense(id, "card expense "+id, amount, on)
	tx.CardID = "visa"
	if isPaid {
		tx = paid(tx)
	}
	return tx
}

func TestCardDebtMetrics_LifetimeDebtIgnoresDateRange(t *testing.T) {
	card := CreditCard{ID: "visa", Name: "Visa", CreditLimit: R(1000), ClosingDay: 5, DueDay: 12}
	txs := []Transaction{
		cardTx("old", 300, day(time.January, 10), false),
		cardTx("recent", 200, day(time.June, 10), false),
		cardTx("settled", 400, day(time.June, 15), true),
		expense("unrelated", "unrelated", 999, day(time.June, 16)),
	}

	june := NewRange(day(time.June, 1), day(time.June, 30))
	january := NewRange(day(time.January, 1), day(time.January, 31))

	forJune := CardDebtMetrics(card, txs, june)
	forJanuary := CardDebtMetrics(card, txs, january)

	// pending debt is lifetime: both unpaid expenses count whatever the range
	if !forJune.TotalDebt.Equal(R(500)) {
		t.Errorf("TotalDebt = %s, want %s", forJune.TotalDebt, R(500))
	}
	if !forJune.TotalDebt.Equal(forJanuary.TotalDebt) ||
		!forJune.AvailableLimit.Equal(forJanuary.AvailableLimit) ||
		forJune.PercentUsed != forJanuary.PercentUsed {
		t.Errorf("display range changed the debt figures: june %+v january %+v", forJune, forJanuary)
	}
	if !forJune.AvailableLimit.Equal(R(500)) {
		t.Errorf("AvailableLimit = %s, want %s", forJune.AvailableLimit, R(500))
	}
	if forJune.PercentUsed != 50 {
		t.Errorf("PercentUsed = %v, want 50", forJune.PercentUsed)
	}

	// the statement view is the period's transactions regardless of status
	if !forJune.Period.Total.Equal(R(600)) {
		t.Errorf("june statement total = %s, want %s", forJune.Period.Total, R(600))
	}
	if !forJanuary.Period.Total.Equal(R(300)) {
		t.Errorf("january statement total = %s, want %s", forJanuary.Period.Total, R(300))
	}
}

func TestCardDebtMetrics_Clamping(t *testing.T) {
	over := CreditCard{ID: "visa", Name: "Visa", CreditLimit: R(100), ClosingDay: 5, DueDay: 12}
	txs := []Transaction{cardTx("big", 250, day(time.June, 1), false)}

	m := CardDebtMetrics(over, txs, Range{})
	if !m.AvailableLimit.IsZero() {
		t.Errorf("AvailableLimit = %s, want 0 when over limit", m.AvailableLimit)
	}
	if m.PercentUsed != 100 {
		t.Errorf("PercentUsed = %v, want clamped to 100", m.PercentUsed)
	}
}

func TestCardDebtMetrics_ZeroLimitNeverDividesByZero(t *testing.T) {
	// a zero limit is rejected by Validate, but stale data must not blow up
	broken := CreditCard{ID: "visa", Name: "Visa", CreditLimit: R(0), ClosingDay: 5, DueDay: 12}
	txs := []Transaction{cardTx("a", 50, day(time.June, 1), false)}

	m := CardDebtMetrics(broken, txs, Range{})
	if m.PercentUsed != 0 {
		t.Errorf("PercentUsed = %v, want 0 for zero limit", m.PercentUsed)
	}
}

func TestCardDebtMetrics_PeriodSplitShares(t *testing.T) {
	card := CreditCard{ID: "visa", Name: "Visa", CreditLimit: R(1000), ClosingDay: 5, DueDay: 12}
	shared := split(expense("s", "shared subscription", 90, day(time.June, 3)), 60, 30, "Ana")
	shared.CardID = "visa"
	txs := []Transaction{shared, cardTx("own", 10, day(time.June, 4), true)}

	m := CardDebtMetrics(card, txs, NewRange(day(time.June, 1), day(time.June, 30)))
	if !m.Period.UserPart.Equal(R(70)) {
		t.Errorf("Period.UserPart = %s, want %s", m.Period.UserPart, R(70))
	}
	if !m.Period.Others["Ana"].Equal(R(30)) {
		t.Errorf("Period.Others[Ana] = %s, want %s", m.Period.Others["Ana"], R(30))
	}
}
