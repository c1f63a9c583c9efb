package grana

// Summary is the at-a-glance result of a view: what came in, what went out,
// and the net, under the current payer lens.
type Summary struct {
	Balance  Money
	Income   Money
	Expenses Money
}

// contribution is the amount a transaction adds to a summary under the given
// payer lens. The rule is contextual on purpose: the displayed totals answer
// "what is the owner's exposure under this lens", not "what is the nominal
// amount".
//
//   - individual lens on a split: only the owner's part counts;
//   - a single named partner on a split: only the partner's part counts;
//   - every other combination: the full amount.
func contribution(tx Transaction, sel PayerSelection) Money {
	if !tx.IsSplit() {
		return tx.Amount
	}
	if sel.IsIndividualOnly() {
		return tx.Split.UserPart
	}
	if _, ok := sel.SingleNamed(); ok {
		return tx.Split.PartnerPart
	}
	return tx.Amount
}

// Summarize reduces a filtered subset into balance, income and expense
// totals. It is a pure function: inputs are never mutated and repeated calls
// yield identical results.
func Summarize(transactions []Transaction, sel PayerSelection) Summary {
	var s Summary
	for _, tx := range transactions {
		c := contribution(tx, sel)
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(c)
			s.Balance = s.Balance.Add(c)
		case Expense:
			s.Expenses = s.Expenses.Add(c)
			s.Balance = s.Balance.Sub(c)
		}
	}
	return s
}

// CardGroup accumulates the expenses charged to one payment source: a credit
// card, or the wallet for cash/pix spending.
type CardGroup struct {
	Key        string // card id, or NoCardKey
	Label      string // card name, or the wallet label
	Total      Money
	UserPart   Money            // owner's share: full amount, or userPart on splits
	Others     map[string]Money // partner name -> accumulated partnerPart
	HasPending bool
}

// GroupByCard groups expense transactions by their payment source. Cards that
// no longer resolve fall into the wallet group, the same as transactions that
// never had a card. Group order follows first appearance in the subset.
func GroupByCard(transactions []Transaction, cards []CreditCard) []CardGroup {
	names := make(map[string]string, len(cards))
	for _, c := range cards {
		names[c.ID] = c.Name
	}

	var order []string
	groups := make(map[string]*CardGroup)

	for _, tx := range transactions {
		if tx.Type != Expense {
			continue
		}
		key := NoCardKey
		label := WalletLabel
		if tx.CardID != "" {
			if name, ok := names[tx.CardID]; ok {
				key, label = tx.CardID, name
			}
		}

		g, ok := groups[key]
		if !ok {
			g = &CardGroup{Key: key, Label: label, Others: make(map[string]Money)}
			groups[key] = g
			order = append(order, key)
		}

		g.Total = g.Total.Add(tx.Amount)
		if tx.IsSplit() {
			g.UserPart = g.UserPart.Add(tx.Split.UserPart)
			partner := tx.Split.PartnerName
			if partner == "" {
				partner = UnknownPayer
			}
			g.Others[partner] = g.Others[partner].Add(tx.Split.PartnerPart)
		} else {
			g.UserPart = g.UserPart.Add(tx.Amount)
		}
		if !tx.IsPaid {
			g.HasPending = true
		}
	}

	out := make([]CardGroup, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out
}
