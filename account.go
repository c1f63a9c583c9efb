package grana

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes how an account holds money.
type AccountType string

const (
	Checking   AccountType = "checking"
	Investment AccountType = "investment"
	Cash       AccountType = "cash"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case Checking:
		return Checking, nil
	case Investment:
		return Investment, nil
	case Cash:
		return Cash, nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

var (
	ErrInvalidAccountType     = errors.New("account type must be checking, investment or cash")
	ErrNegativeInvestedAmount = errors.New("initial invested balance cannot be negative")
)

// Account is a place money rests: a checking account, an investment pot, or
// plain cash. InitialBalance seeds the liquid balance (it may be negative);
// InitialInvestedBalance seeds the invested/reserve pool.
type Account struct {
	ID                     string
	Name                   string
	Type                   AccountType
	Color                  string
	InitialBalance         Money
	InitialInvestedBalance Money
}

// Validate checks the account for correctness.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if a.Type != Checking && a.Type != Investment && a.Type != Cash {
		return ErrInvalidAccountType
	}
	if a.InitialInvestedBalance.IsNegative() {
		return ErrNegativeInvestedAmount
	}
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Optional("color", a.Color)
	w.Append("initial_balance", a.InitialBalance.Decimal())
	w.Append("initial_invested_balance", a.InitialInvestedBalance.Decimal())
	w.Optional("currency", a.InitialBalance.Currency())
	return w.MarshalJSON()
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID                     string          `json:"id"`
		Name                   string          `json:"name"`
		Type                   AccountType     `json:"type"`
		Color                  string          `json:"color"`
		InitialBalance         decimal.Decimal `json:"initial_balance"`
		InitialInvestedBalance decimal.Decimal `json:"initial_invested_balance"`
		Currency               string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*a = Account{
		ID:                     temp.ID,
		Name:                   temp.Name,
		Type:                   temp.Type,
		Color:                  temp.Color,
		InitialBalance:         M(temp.InitialBalance, temp.Currency),
		InitialInvestedBalance: M(temp.InitialInvestedBalance, temp.Currency),
	}
	return nil
}
