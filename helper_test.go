package grana

import "time"

// R is a helper for tests to create money in the default currency.
func R(v float64) Money { return M(v, DefaultCurrency) }

// day is a helper for tests to create a 2024 date.
func day(month time.Month, d int) Date { return NewDate(2024, month, d) }

// expense builds a minimal expense transaction for tests.
func expense(id, desc string, amount float64, on Date) Transaction {
	return Transaction{
		ID:          id,
		Description: desc,
		Amount:      R(amount),
		Type:        Expense,
		Category:    "Outros",
		Date:        on,
	}
}

// income builds a minimal income transaction for tests.
func income(id, desc string, amount float64, on Date) Transaction {
	return Transaction{
		ID:          id,
		Description: desc,
		Amount:      R(amount),
		Type:        Income,
		Category:    "Salário",
		Date:        on,
	}
}

// paid marks a transaction paid on its due date.
func paid(tx Transaction) Transaction {
	tx.IsPaid = true
	tx.PaymentDate = tx.Date
	return tx
}

// split divides a transaction with a partner.
func split(tx Transaction, userPart, partnerPart float64, partner string) Transaction {
	tx.Split = &SplitDetails{
		UserPart:    R(userPart),
		PartnerPart: R(partnerPart),
		PartnerName: partner,
	}
	return tx
}
