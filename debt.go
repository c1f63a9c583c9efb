package grana

// PeriodStats is the calendar-scoped statement view of a card: the
// transactions whose due date falls in the displayed range, regardless of
// paid status.
type PeriodStats struct {
	Total    Money
	UserPart Money
	Others   map[string]Money // partner name -> accumulated partnerPart
}

// DebtMetrics carries the two independent measures of a card's state.
//
// TotalDebt is the lifetime pending debt: every unpaid expense ever charged to
// the card, no date scoping. That, and only that, is what occupies the credit
// limit. Period is the statement view for the displayed range and never feeds
// the limit computation.
type DebtMetrics struct {
	TotalDebt      Money
	AvailableLimit Money
	PercentUsed    float64 // clamped to [0,100]; 0 when the limit is 0
	Period         PeriodStats
}

// CardDebtMetrics computes both measures for one card over the full
// transaction list. displayRange scopes only the statement view.
func CardDebtMetrics(card CreditCard, transactions []Transaction, displayRange Range) DebtMetrics {
	m := DebtMetrics{
		Period: PeriodStats{Others: make(map[string]Money)},
	}

	for _, tx := range transactions {
		if tx.CardID != card.ID {
			continue
		}
		if tx.Type == Expense && !tx.IsPaid {
			m.TotalDebt = m.TotalDebt.Add(tx.Amount)
		}
		if displayRange.Contains(tx.Date) {
			m.Period.Total = m.Period.Total.Add(tx.Amount)
			if tx.IsSplit() {
				m.Period.UserPart = m.Period.UserPart.Add(tx.Split.UserPart)
				partner := tx.Split.PartnerName
				if partner == "" {
					partner = UnknownPayer
				}
				m.Period.Others[partner] = m.Period.Others[partner].Add(tx.Split.PartnerPart)
			} else {
				m.Period.UserPart = m.Period.UserPart.Add(tx.Amount)
			}
		}
	}

	available := card.CreditLimit.Sub(m.TotalDebt)
	if available.IsNegative() {
		available = M(0, card.CreditLimit.Currency())
	}
	m.AvailableLimit = available
	m.PercentUsed = m.TotalDebt.Percent(card.CreditLimit)
	return m
}
