package grana

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrNotFound reports a mutation referencing an id absent from the snapshot.
// Read paths never raise it: a stale reference simply resolves to the
// "no card"/"no account" sentinel during aggregation.
var ErrNotFound = errors.New("not found")

// Sentinels used when a transaction has no card, or a split has no usable
// partner name.
const (
	NoCardKey    = "no-card"
	WalletLabel  = "Carteira"
	UnknownPayer = "Indefinido"
)

// Ledger holds the canonical in-memory collections: transactions, cards,
// accounts and the category/payer registry.
//
// Transactions are always kept in chronological order. The ledger itself is a
// passive snapshot; all mutations go through a Store.
type Ledger struct {
	name         string
	transactions []Transaction
	cards        []CreditCard
	accounts     []Account
	categories   UserCategories

	txIndex      map[string]int // transaction id -> position
	cardIndex    map[string]int
	accountIndex map[string]int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		categories:   NewUserCategories(),
		txIndex:      make(map[string]int),
		cardIndex:    make(map[string]int),
		accountIndex: make(map[string]int),
	}
}

// Name returns the ledger name, used to locate its file on disk.
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger name.
func (l *Ledger) SetName(name string) { l.name = name }

// Transactions iterates over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// AllTransactions returns a copy of the transaction list.
func (l *Ledger) AllTransactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Cards returns a copy of the card list.
func (l *Ledger) Cards() []CreditCard { return slices.Clone(l.cards) }

// Accounts returns a copy of the account list.
func (l *Ledger) Accounts() []Account { return slices.Clone(l.accounts) }

// Categories returns the category/payer registry.
func (l *Ledger) Categories() UserCategories { return l.categories }

// Transaction returns the transaction with this id, or nil if unknown.
func (l *Ledger) Transaction(id string) *Transaction {
	i, ok := l.txIndex[id]
	if !ok {
		return nil
	}
	tx := l.transactions[i]
	return &tx
}

// Card returns the card with this id, or nil if unknown.
func (l *Ledger) Card(id string) *CreditCard {
	i, ok := l.cardIndex[id]
	if !ok {
		return nil
	}
	c := l.cards[i]
	return &c
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	i, ok := l.accountIndex[id]
	if !ok {
		return nil
	}
	a := l.accounts[i]
	return &a
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// AddCard registers a card in the ledger.
func (l *Ledger) AddCard(cards ...CreditCard) {
	for _, c := range cards {
		l.cardIndex[c.ID] = len(l.cards)
		l.cards = append(l.cards, c)
	}
}

// AddAccount registers an account in the ledger.
func (l *Ledger) AddAccount(accounts ...Account) {
	for _, a := range accounts {
		l.accountIndex[a.ID] = len(l.accounts)
		l.accounts = append(l.accounts, a)
	}
}

// SetCategories replaces the category/payer registry.
func (l *Ledger) SetCategories(u UserCategories) { l.categories = u }

// stableSort orders transactions by date, keeping the original relative order
// of same-day entries, and rebuilds the id index.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	l.reindex()
}

func (l *Ledger) reindex() {
	l.txIndex = make(map[string]int, len(l.transactions))
	for i, tx := range l.transactions {
		l.txIndex[tx.ID] = i
	}
	l.cardIndex = make(map[string]int, len(l.cards))
	for i, c := range l.cards {
		l.cardIndex[c.ID] = i
	}
	l.accountIndex = make(map[string]int, len(l.accounts))
	for i, a := range l.accounts {
		l.accountIndex[a.ID] = i
	}
}

// clone returns a deep enough copy for staging a mutation: slices and indexes
// are fresh, record values are copied.
func (l *Ledger) clone() *Ledger {
	c := &Ledger{
		name:         l.name,
		transactions: slices.Clone(l.transactions),
		cards:        slices.Clone(l.cards),
		accounts:     slices.Clone(l.accounts),
		categories:   l.categories.clone(),
	}
	for i, tx := range c.transactions {
		if tx.Split != nil {
			split := *tx.Split
			c.transactions[i].Split = &split
		}
	}
	c.reindex()
	return c
}

// setTransaction replaces the transaction with the same id.
func (l *Ledger) setTransaction(tx Transaction) error {
	i, ok := l.txIndex[tx.ID]
	if !ok {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, tx.ID)
	}
	l.transactions[i] = tx
	l.stableSort()
	return nil
}

// removeTransaction deletes the transaction with this id.
func (l *Ledger) removeTransaction(id string) error {
	i, ok := l.txIndex[id]
	if !ok {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	l.reindex()
	return nil
}

// setCard replaces the card with the same id.
func (l *Ledger) setCard(c CreditCard) error {
	i, ok := l.cardIndex[c.ID]
	if !ok {
		return fmt.Errorf("%w: card %q", ErrNotFound, c.ID)
	}
	l.cards[i] = c
	return nil
}

// removeCard deletes the card with this id. Transactions referencing it are
// left untouched: stale references are expected and resolve to "no card".
func (l *Ledger) removeCard(id string) error {
	i, ok := l.cardIndex[id]
	if !ok {
		return fmt.Errorf("%w: card %q", ErrNotFound, id)
	}
	l.cards = slices.Delete(l.cards, i, i+1)
	l.reindex()
	return nil
}

// removeAccount deletes the account with this id, leaving references intact.
func (l *Ledger) removeAccount(id string) error {
	i, ok := l.accountIndex[id]
	if !ok {
		return fmt.Errorf("%w: account %q", ErrNotFound, id)
	}
	l.accounts = slices.Delete(l.accounts, i, i+1)
	l.reindex()
	return nil
}
