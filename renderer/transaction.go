package renderer

import (
	"fmt"

	"github.com/grana-app/grana"
)

// Transaction renders a single ledger entry to a one-line string.
func Transaction(tx grana.Transaction) string {
	status := "pending"
	if tx.IsPaid {
		status = "paid " + tx.PaymentDate.String()
	}
	line := fmt.Sprintf("%s %s (%s, %s)", tx.Date, tx.Description, tx.Amount, status)
	if tx.IsSplit() {
		line += fmt.Sprintf(" split with %s: %s / %s",
			tx.Split.PartnerName, tx.Split.UserPart, tx.Split.PartnerPart)
	}
	return line
}
