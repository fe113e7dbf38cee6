// Package ledger implements the transaction ledger: validated CRUD over
// transactions, filtered listing, aggregate statistics and the category
// lifecycle. Every successful mutation is written through to storage before
// the call returns.
//
// A Ledger is driven by a single caller at a time and is not safe for
// concurrent use.
package ledger

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/google/uuid"
)

// Storage is the persistence the ledger writes through to.
// *store.Store satisfies it.
type Storage interface {
	LoadTransactions() ([]model.Transaction, bool, error)
	LoadCategories() ([]string, error)
	SaveTransactions([]model.Transaction) error
	SaveCategories([]string) error
}

// Ledger owns the in-memory transaction and category collections.
type Ledger struct {
	storage      Storage
	transactions []model.Transaction
	categories   []string // canonical lowercase, sorted
	newID        func() string
	logger       *slog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// WithLogger sets the logger for mutation events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Open loads both collections from storage. Migrated transaction records
// are saved back immediately so later loads start clean.
func Open(storage Storage, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		storage: storage,
		newID:   uuid.NewString,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("component", "ledger")

	txs, migrated, err := storage.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	if migrated {
		if err := storage.SaveTransactions(txs); err != nil {
			return nil, fmt.Errorf("persisting migrated transactions: %w", err)
		}
	}

	cats, err := storage.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	l.transactions = txs
	l.categories = canonicalCategories(cats)
	l.logger.Debug("ledger opened",
		"transactions", len(l.transactions),
		"categories", len(l.categories),
		"migrated", migrated)
	return l, nil
}

// canonicalCategories lowercases, de-duplicates and sorts names.
func canonicalCategories(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		c := model.NormalizeCategory(n)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Transactions returns a copy of the full collection in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	return cloneAll(l.transactions)
}

// Categories returns the canonical category names in alphabetical order.
func (l *Ledger) Categories() []string {
	out := make([]string, len(l.categories))
	copy(out, l.categories)
	return out
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (model.Transaction, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Transaction{}, false
	}
	return l.transactions[i].Clone(), true
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(txs []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	for i, t := range txs {
		out[i] = t.Clone()
	}
	return out
}
