package grana

// Settlement aggregates what one registered partner owes the ledger owner
// across the split transactions of a period.
type Settlement struct {
	Payer          string
	TotalToReceive Money
	Paid           Money
	Pending        Money
}

// PayerSettlement computes the settlement figures for every registered payer
// over the split transactions whose date falls in the range.
//
// The result is registry-driven: a payer with no matching transactions still
// appears, zero-filled, so the settlement view always enumerates every known
// partner.
func PayerSettlement(categories UserCategories, transactions []Transaction, dateRange Range) []Settlement {
	out := make([]Settlement, len(categories.Payers))
	index := make(map[string]int, len(categories.Payers))
	for i, payer := range categories.Payers {
		out[i] = Settlement{Payer: payer}
		index[payer] = i
	}

	for _, tx := range transactions {
		if !tx.IsSplit() || !dateRange.Contains(tx.Date) {
			continue
		}
		i, ok := index[tx.Split.PartnerName]
		if !ok {
			// partner not in the registry: not part of the settlement view
			continue
		}
		share := ResolveShare(tx, PartnerViewer(out[i].Payer))
		out[i].TotalToReceive = out[i].TotalToReceive.Add(share)
		if tx.IsPaid {
			out[i].Paid = out[i].Paid.Add(share)
		} else {
			out[i].Pending = out[i].Pending.Add(share)
		}
	}
	return out
}
