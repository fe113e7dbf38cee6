// Package store persists the ledger as two pretty-printed JSON documents:
// one for transactions and one for the category list.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/fintrack/internal/model"
)

const (
	// DefaultTransactionsFile is the transaction document name.
	DefaultTransactionsFile = "expenses.json"
	// DefaultCategoriesFile is the category document name.
	DefaultCategoriesFile = "categories.json"
)

// BackupSuffix is appended to a file name when unreadable content is set
// aside before it can be overwritten.
const BackupSuffix = ".corrupt"

// Store reads and writes the ledger files. Every save is a full overwrite;
// the only backup taken is of content that failed to load.
type Store struct {
	dir              string
	transactionsFile string
	categoriesFile   string
	logger           *slog.Logger

	corruptTransactions bool
	corruptCategories   bool
	backups             map[string]string
}

// Option configures a Store.
type Option func(*Store)

// WithTransactionsFile overrides the transaction document name.
func WithTransactionsFile(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.transactionsFile = name
		}
	}
}

// WithCategoriesFile overrides the category document name.
func WithCategoriesFile(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.categoriesFile = name
		}
	}
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Store rooted at dir. Nothing is read until a Load call.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:              dir,
		transactionsFile: DefaultTransactionsFile,
		categoriesFile:   DefaultCategoriesFile,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store")
	return s
}

// TransactionsPath returns the full path of the transaction document.
func (s *Store) TransactionsPath() string {
	return filepath.Join(s.dir, s.transactionsFile)
}

// CategoriesPath returns the full path of the category document.
func (s *Store) CategoriesPath() string {
	return filepath.Join(s.dir, s.categoriesFile)
}

// Corrupt reports whether the last load of either file found unparsable
// content and fell back to an empty collection.
func (s *Store) Corrupt() bool {
	return s.corruptTransactions || s.corruptCategories
}

// Backups returns the copies made of unreadable files during the last
// loads, ordered transactions first.
func (s *Store) Backups() []string {
	var out []string
	for _, p := range []string{s.TransactionsPath(), s.CategoriesPath()} {
		if b, ok := s.backups[p]; ok {
			out = append(out, b)
		}
	}
	return out
}

// setAside copies unreadable content next to the original so the next save
// cannot destroy it. Failure to copy is logged, not returned.
func (s *Store) setAside(path string, data []byte) {
	backup := path + BackupSuffix
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		s.logger.Error("could not back up unreadable file", "path", path, "error", err)
		return
	}
	if s.backups == nil {
		s.backups = make(map[string]string)
	}
	s.backups[path] = backup
}

// LoadTransactions reads and migrates the transaction document.
// A missing file yields an empty collection. Corrupt content is logged and
// also yields an empty collection, after the raw bytes are copied to
// <file>.corrupt. A single malformed record counts as corrupt content; there
// is no partial recovery. migrated reports whether any record had
// to be upgraded.
func (s *Store) LoadTransactions() (txs []model.Transaction, migrated bool, err error) {
	s.corruptTransactions = false
	delete(s.backups, s.TransactionsPath())

	data, err := os.ReadFile(s.TransactionsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Transaction{}, false, nil
		}
		return nil, false, fmt.Errorf("reading transactions: %w", err)
	}

	txs, migrated, err = Migrate(data)
	if err != nil {
		if errors.Is(err, ErrCorruptStorage) {
			s.corruptTransactions = true
			s.setAside(s.TransactionsPath(), data)
			s.logger.Warn("transaction file unreadable, starting empty",
				"path", s.TransactionsPath(), "error", err)
			return []model.Transaction{}, false, nil
		}
		return nil, false, err
	}

	if migrated {
		s.logger.Info("migrated transaction records", "path", s.TransactionsPath(), "count", len(txs))
	}
	return txs, migrated, nil
}

// LoadCategories returns the category document verbatim, or the default
// category list when the file does not exist.
func (s *Store) LoadCategories() ([]string, error) {
	s.corruptCategories = false
	delete(s.backups, s.CategoriesPath())

	data, err := os.ReadFile(s.CategoriesPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultCategories(), nil
		}
		return nil, fmt.Errorf("reading categories: %w", err)
	}

	var cats []string
	if err := json.Unmarshal(data, &cats); err != nil {
		s.corruptCategories = true
		s.setAside(s.CategoriesPath(), data)
		s.logger.Warn("category file unreadable, starting empty",
			"path", s.CategoriesPath(), "error", fmt.Errorf("%w: %v", ErrCorruptStorage, err))
		return []string{}, nil
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// SaveTransactions overwrites the transaction document.
func (s *Store) SaveTransactions(txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}
	if err := s.writeJSON(s.TransactionsPath(), txs); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	s.logger.Debug("saved transactions", "count", len(txs))
	return nil
}

// SaveCategories overwrites the category document.
func (s *Store) SaveCategories(cats []string) error {
	if cats == nil {
		cats = []string{}
	}
	if err := s.writeJSON(s.CategoriesPath(), cats); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}
	s.logger.Debug("saved categories", "count", len(cats))
	return nil
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
