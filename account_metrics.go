package grana

import "strings"

// AccountMetrics is the derived state of one account: its liquid balance, its
// invested/reserve pool, the patrimony (sum of both), and the lifetime pending
// debt of the cards that settle on it.
type AccountMetrics struct {
	CurrentLiquid   Money
	CurrentInvested Money
	TotalPatrimony  Money
	CreditCardDebt  Money
}

// isInvestmentCategory reports whether a category name marks an investment
// movement. Matching is a case-insensitive substring so both "Investimentos"
// and "Investments" qualify.
func isInvestmentCategory(category string) bool {
	return strings.Contains(strings.ToLower(category), "invest")
}

// AccountDerivedMetrics folds the paid transactions of an account into its
// liquid and invested balances.
//
// The sign rules mirror the recorded product behavior, including the
// investment-income one, where the income credits liquid and simultaneously
// nets the movement accumulator down. Card transactions never fold into
// balances here; cards only contribute through CreditCardDebt when they settle
// on this account.
func AccountDerivedMetrics(account Account, transactions []Transaction, cards []CreditCard) AccountMetrics {
	var balanceChange, investmentMovements Money

	for _, tx := range transactions {
		if !tx.IsPaid || tx.AccountID != account.ID {
			continue
		}
		switch tx.Type {
		case Income:
			balanceChange = balanceChange.Add(tx.Amount)
			if isInvestmentCategory(tx.Category) {
				investmentMovements = investmentMovements.Sub(tx.Amount)
			}
		case Expense:
			switch {
			case tx.IsReserveWithdrawal:
				// drawn from the reserve pool; liquid untouched
				investmentMovements = investmentMovements.Sub(tx.Amount)
			case isInvestmentCategory(tx.Category):
				// a contribution: liquid down, invested up
				balanceChange = balanceChange.Sub(tx.Amount)
				investmentMovements = investmentMovements.Add(tx.Amount)
			default:
				balanceChange = balanceChange.Sub(tx.Amount)
			}
		}
	}

	liquid := account.InitialBalance.Add(balanceChange)
	invested := account.InitialInvestedBalance.Add(investmentMovements)

	return AccountMetrics{
		CurrentLiquid:   liquid,
		CurrentInvested: invested,
		TotalPatrimony:  liquid.Add(invested),
		CreditCardDebt:  accountCardDebt(account, transactions, cards),
	}
}

// accountCardDebt sums the unpaid expenses of every card settling on this
// account. Like a card's own TotalDebt it is a lifetime measure, but it is
// computed independently and used purely for account-level display.
func accountCardDebt(account Account, transactions []Transaction, cards []CreditCard) Money {
	linked := make(map[string]bool)
	for _, c := range cards {
		if c.AccountID == account.ID {
			linked[c.ID] = true
		}
	}
	var debt Money
	if len(linked) == 0 {
		return debt
	}
	for _, tx := range transactions {
		if tx.Type == Expense && !tx.IsPaid && linked[tx.CardID] {
			debt = debt.Add(tx.Amount)
		}
	}
	return debt
}
