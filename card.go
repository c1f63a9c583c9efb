package grana

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidLimit    = errors.New("credit limit must be positive")
	ErrInvalidMonthDay = errors.New("day of month must be between 1 and 31")
)

// CreditCard is a credit card the user charges expenses to.
//
// AccountID optionally links the card's settlement to an Account, so that the
// card's lifetime pending debt shows up on that account's view.
type CreditCard struct {
	ID          string
	Name        string
	Color       string
	CreditLimit Money
	ClosingDay  int // 1-31
	DueDay      int // 1-31
	AccountID   string
}

// Validate checks the card for correctness.
func (c CreditCard) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.CreditLimit.IsPositive() {
		return ErrInvalidLimit
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return ErrInvalidMonthDay
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return ErrInvalidMonthDay
	}
	return nil
}

func (c CreditCard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("color", c.Color)
	w.Append("credit_limit", c.CreditLimit.Decimal())
	w.Optional("currency", c.CreditLimit.Currency())
	w.Append("closing_day", c.ClosingDay)
	w.Append("due_day", c.DueDay)
	w.Optional("account_id", c.AccountID)
	return w.MarshalJSON()
}

func (c *CreditCard) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Color       string          `json:"color"`
		CreditLimit decimal.Decimal `json:"credit_limit"`
		Currency    string          `json:"currency"`
		ClosingDay  int             `json:"closing_day"`
		DueDay      int             `json:"due_day"`
		AccountID   string          `json:"account_id"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*c = CreditCard{
		ID:          temp.ID,
		Name:        temp.Name,
		Color:       temp.Color,
		CreditLimit: M(temp.CreditLimit, temp.Currency),
		ClosingDay:  temp.ClosingDay,
		DueDay:      temp.DueDay,
		AccountID:   temp.AccountID,
	}
	return nil
}
