package grana

import (
	"fmt"

	"github.com/google/uuid"
)

// Persister is the external persistence collaborator. A Persist call is one
// logical unit: it either lands the whole ledger state or fails without
// side effects the store cares about.
type Persister interface {
	Persist(*Ledger) error
}

// Store owns every mutation of the ledger. Each operation validates its
// input, stages the next ledger state, asks the persister to land it, and
// only then swaps the in-memory snapshot. On any failure the snapshot is left
// exactly as it was and the error is returned: no retry, no partial apply.
//
// Concurrent mutations are not coordinated here; callers debounce at their
// own boundary.
type Store struct {
	ledger    *Ledger
	persister Persister
}

// NewStore creates a store over a ledger. persister may be nil, in which case
// mutations apply to memory only (useful for tests and dry runs).
func NewStore(ledger *Ledger, persister Persister) *Store {
	return &Store{ledger: ledger, persister: persister}
}

// Ledger returns the current read-only snapshot.
func (s *Store) Ledger() *Ledger { return s.ledger }

// commit persists the staged ledger and, on success, makes it current.
func (s *Store) commit(next *Ledger) error {
	if s.persister != nil {
		if err := s.persister.Persist(next); err != nil {
			return fmt.Errorf("persist ledger: %w", err)
		}
	}
	s.ledger = next
	return nil
}

// CreateTransaction validates and records a new transaction, minting an id
// when the caller did not provide one.
func (s *Store) CreateTransaction(tx Transaction) (Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	if s.ledger.Transaction(tx.ID) != nil {
		return Transaction{}, fmt.Errorf("transaction %q already exists", tx.ID)
	}
	next := s.ledger.clone()
	next.Append(tx)
	if err := s.commit(next); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// UpdateTransaction replaces the stored transaction carrying the same id.
func (s *Store) UpdateTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	next := s.ledger.clone()
	if err := next.setTransaction(tx); err != nil {
		return err
	}
	return s.commit(next)
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(id string) error {
	next := s.ledger.clone()
	if err := next.removeTransaction(id); err != nil {
		return err
	}
	return s.commit(next)
}

// SetPaidStatus toggles a transaction's paid flag. Marking paid stamps the
// given payment date, defaulting to today; marking pending clears it.
func (s *Store) SetPaidStatus(id string, paid bool, paymentDate Date) error {
	current := s.ledger.Transaction(id)
	if current == nil {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	tx := *current
	tx.IsPaid = paid
	if paid {
		if paymentDate.IsZero() {
			paymentDate = Today()
		}
		tx.PaymentDate = paymentDate
	} else {
		tx.PaymentDate = Date{}
	}
	next := s.ledger.clone()
	if err := next.setTransaction(tx); err != nil {
		return err
	}
	return s.commit(next)
}

// CreateCard validates and registers a new credit card.
func (s *Store) CreateCard(card CreditCard) (CreditCard, error) {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	if err := card.Validate(); err != nil {
		return CreditCard{}, fmt.Errorf("invalid card: %w", err)
	}
	if s.ledger.Card(card.ID) != nil {
		return CreditCard{}, fmt.Errorf("card %q already exists", card.ID)
	}
	next := s.ledger.clone()
	next.AddCard(card)
	if err := s.commit(next); err != nil {
		return CreditCard{}, err
	}
	return card, nil
}

// UpdateCard replaces the stored card carrying the same id.
func (s *Store) UpdateCard(card CreditCard) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("invalid card: %w", err)
	}
	next := s.ledger.clone()
	if err := next.setCard(card); err != nil {
		return err
	}
	return s.commit(next)
}

// DeleteCard removes a card. Transactions referencing it are untouched and
// resolve to the wallet group from then on.
func (s *Store) DeleteCard(id string) error {
	next := s.ledger.clone()
	if err := next.removeCard(id); err != nil {
		return err
	}
	return s.commit(next)
}

// CreateAccount validates and registers a new account.
func (s *Store) CreateAccount(account Account) (Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if err := account.Validate(); err != nil {
		return Account{}, fmt.Errorf("invalid account: %w", err)
	}
	if s.ledger.Account(account.ID) != nil {
		return Account{}, fmt.Errorf("account %q already exists", account.ID)
	}
	next := s.ledger.clone()
	next.AddAccount(account)
	if err := s.commit(next); err != nil {
		return Account{}, err
	}
	return account, nil
}

// DeleteAccount removes an account, leaving references from transactions and
// cards intact.
func (s *Store) DeleteAccount(id string) error {
	next := s.ledger.clone()
	if err := next.removeAccount(id); err != nil {
		return err
	}
	return s.commit(next)
}

// UpsertCategory registers a category or payer name, with optional
// presentation metadata.
func (s *Store) UpsertCategory(scope CategoryScope, name, color, icon string) error {
	next := s.ledger.clone()
	if err := next.categories.upsert(scope, name, color, icon); err != nil {
		return err
	}
	return s.commit(next)
}

// DeleteCategory removes a category or payer name from the registry.
func (s *Store) DeleteCategory(scope CategoryScope, name string) error {
	next := s.ledger.clone()
	if err := next.categories.remove(scope, name); err != nil {
		return err
	}
	return s.commit(next)
}
