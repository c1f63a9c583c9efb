package grana

// Viewer selects whose share of a transaction is being asked for: the ledger
// owner, or one named partner.
type Viewer struct {
	partner string
	self    bool
}

// Self views transactions as the ledger owner.
func Self() Viewer { return Viewer{self: true} }

// PartnerViewer views transactions as the named split partner.
func PartnerViewer(name string) Viewer { return Viewer{partner: name} }

// ResolveShare computes the viewer's monetary share of a transaction.
//
// The owner's share is the user part of a split, or the full amount otherwise.
// A partner's share is the partner part when the split names them, and zero in
// every other case: the transaction simply does not belong to that partner.
func ResolveShare(tx Transaction, v Viewer) Money {
	if v.self {
		if tx.IsSplit() {
			return tx.Split.UserPart
		}
		return tx.Amount
	}
	if tx.IsSplit() && tx.Split.PartnerName == v.partner {
		return tx.Split.PartnerPart
	}
	return M(0, tx.Amount.Currency())
}
