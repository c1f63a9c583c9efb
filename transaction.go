package grana

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyCategory      = errors.New("empty category")
	ErrInvalidType        = errors.New("type must be income or expense")
	ErrSplitMismatch      = errors.New("split parts do not sum to the transaction amount")
	ErrNegativeSplitPart  = errors.New("split parts must be non-negative")
	ErrPaymentDateMissing = errors.New("paid transaction requires a payment date")
	ErrPaymentDateSet     = errors.New("pending transaction cannot carry a payment date")
)

// SplitDetails records how a transaction is divided between the ledger owner
// and one named partner. Parts always sum to the parent amount.
type SplitDetails struct {
	UserPart    Money
	PartnerPart Money
	PartnerName string
}

func (s SplitDetails) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("userPart", s.UserPart.Decimal())
	w.Append("partnerPart", s.PartnerPart.Decimal())
	w.Append("partnerName", s.PartnerName)
	return w.MarshalJSON()
}

func (s *SplitDetails) UnmarshalJSON(data []byte) error {
	var temp struct {
		UserPart    decimal.Decimal `json:"userPart"`
		PartnerPart decimal.Decimal `json:"partnerPart"`
		PartnerName string          `json:"partnerName"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	s.UserPart = M(temp.UserPart, "")
	s.PartnerPart = M(temp.PartnerPart, "")
	s.PartnerName = temp.PartnerName
	return nil
}

// Transaction is a single ledger entry, immutable once persisted: edits go
// through the store, which replaces the record wholesale.
//
// Date is the due or scheduled date; PaymentDate is set only once the
// transaction is paid. CardID and AccountID reference the card or account the
// money moved through; references to deleted entities are tolerated and
// resolve to "no card"/"no account" during aggregation.
type Transaction struct {
	ID                  string
	Description         string
	Amount              Money
	Type                TransactionType
	Category            string
	Date                Date
	PaymentDate         Date // zero unless IsPaid
	IsPaid              bool
	CardID              string
	AccountID           string
	Split               *SplitDetails // nil unless the transaction is split
	IsReserveWithdrawal bool          // expense funded from the invested pool
}

// IsSplit reports whether the transaction is divided with a partner.
func (t Transaction) IsSplit() bool { return t.Split != nil }

// PartnerName returns the split partner's name, or "" for unsplit transactions.
func (t Transaction) PartnerName() string {
	if t.Split == nil {
		return ""
	}
	return t.Split.PartnerName
}

// Validate checks the transaction for correctness. Malformed records are
// rejected synchronously, never silently coerced.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Type != Income && t.Type != Expense {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.IsPaid && t.PaymentDate.IsZero() {
		return ErrPaymentDateMissing
	}
	if !t.IsPaid && !t.PaymentDate.IsZero() {
		return ErrPaymentDateSet
	}
	if t.Split != nil {
		if t.Split.UserPart.IsNegative() || t.Split.PartnerPart.IsNegative() {
			return ErrNegativeSplitPart
		}
		if !t.Split.UserPart.Add(t.Split.PartnerPart).NearlyEqual(t.Amount) {
			return fmt.Errorf("%w: %s + %s != %s", ErrSplitMismatch,
				t.Split.UserPart, t.Split.PartnerPart, t.Amount)
		}
	}
	return nil
}

// MarshalJSON writes the persisted row shape with stable key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount.Decimal())
	w.Optional("currency", t.Amount.Currency())
	w.Append("type", t.Type)
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	if t.IsPaid {
		w.Append("payment_date", t.PaymentDate)
	}
	w.Append("is_paid", t.IsPaid)
	w.Optional("card_id", t.CardID)
	w.Optional("account_id", t.AccountID)
	if t.Split != nil {
		w.Append("is_split", true)
		w.Append("split_details", t.Split)
	}
	if t.IsReserveWithdrawal {
		w.Append("is_reserve_withdrawal", true)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted row shape.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID                  string          `json:"id"`
		Description         string          `json:"description"`
		Amount              decimal.Decimal `json:"amount"`
		Currency            string          `json:"currency"`
		Type                TransactionType `json:"type"`
		Category            string          `json:"category"`
		Date                Date            `json:"date"`
		PaymentDate         Date            `json:"payment_date"`
		IsPaid              bool            `json:"is_paid"`
		CardID              string          `json:"card_id"`
		AccountID           string          `json:"account_id"`
		IsSplit             bool            `json:"is_split"`
		Split               *SplitDetails   `json:"split_details"`
		IsReserveWithdrawal bool            `json:"is_reserve_withdrawal"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		ID:                  temp.ID,
		Description:         temp.Description,
		Amount:              M(temp.Amount, temp.Currency),
		Type:                temp.Type,
		Category:            temp.Category,
		Date:                temp.Date,
		PaymentDate:         temp.PaymentDate,
		IsPaid:              temp.IsPaid,
		CardID:              temp.CardID,
		AccountID:           temp.AccountID,
		IsReserveWithdrawal: temp.IsReserveWithdrawal,
	}
	if temp.IsSplit && temp.Split != nil {
		split := *temp.Split
		// split parts inherit the parent currency
		split.UserPart = M(split.UserPart.Decimal(), temp.Currency)
		split.PartnerPart = M(split.PartnerPart.Decimal(), temp.Currency)
		t.Split = &split
	}
	return nil
}

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	if t.Split == nil != (o.Split == nil) {
		return false
	}
	if t.Split != nil {
		if !t.Split.UserPart.Equal(o.Split.UserPart) ||
			!t.Split.PartnerPart.Equal(o.Split.PartnerPart) ||
			t.Split.PartnerName != o.Split.PartnerName {
			return false
		}
	}
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Category == o.Category &&
		t.Date == o.Date &&
		t.PaymentDate == o.PaymentDate &&
		t.IsPaid == o.IsPaid &&
		t.CardID == o.CardID &&
		t.AccountID == o.AccountID &&
		t.IsReserveWithdrawal == o.IsReserveWithdrawal
}
