// Package archive writes ledger snapshots into a SQLite database so they can
// be queried with ordinary SQL tools.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive is an open snapshot database.
type Archive struct {
	db   *sql.DB
	path string
}

// Export describes one recorded snapshot.
type Export struct {
	At           time.Time
	Transactions int
	Categories   int
	TotalIncome  float64
	TotalExpense float64
}

// Open opens or creates the archive at dbPath and migrates its schema.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}
	return &Archive{db: db, path: dbPath}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the database file path.
func (a *Archive) Path() string {
	return a.path
}

// SchemaVersion returns the applied migration version.
func (a *Archive) SchemaVersion() (uint, error) {
	v, dirty, err := schemaVersion(a.path)
	if err != nil {
		return 0, err
	}
	if dirty {
		return v, fmt.Errorf("archive schema version %d is dirty", v)
	}
	return v, nil
}

// WriteLedger replaces the archived ledger with txs and categories in one
// database transaction and records an export row. progress, if non-nil, is
// called after each transaction row is written.
func (a *Archive) WriteLedger(txs []model.Transaction, categories []string, progress func(done int)) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return fmt.Errorf("clearing transactions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}

	for _, c := range categories {
		name := model.NormalizeCategory(c)
		_, err := tx.Exec(`INSERT OR REPLACE INTO categories (name, display_name) VALUES (?, ?)`,
			name, model.DisplayCategory(name))
		if err != nil {
			return fmt.Errorf("inserting category %q: %w", name, err)
		}
	}

	stmt, err := tx.Prepare(`INSERT INTO transactions
		(id, type, amount, category, description, date, extra, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range txs {
		var extra sql.NullString
		if len(t.Extra) > 0 {
			data, err := json.Marshal(t.Extra)
			if err != nil {
				return fmt.Errorf("encoding extra fields of %s: %w", t.ID, err)
			}
			extra = sql.NullString{String: string(data), Valid: true}
		}
		if _, err := stmt.Exec(t.ID, string(t.Type), t.Amount, t.Category, t.Description, t.Date, extra, i); err != nil {
			return fmt.Errorf("inserting transaction %s: %w", t.ID, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}

	sum := ledger.Summarize(txs)
	_, err = tx.Exec(`INSERT INTO exports
		(exported_at, transactions, categories, total_income, total_expense)
		VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), len(txs), len(categories), sum.TotalIncome, sum.TotalExpense)
	if err != nil {
		return fmt.Errorf("recording export: %w", err)
	}

	return tx.Commit()
}

// loadTransactions reads archived transactions in their original order.
func (a *Archive) loadTransactions() ([]model.Transaction, error) {
	rows, err := a.db.Query(`SELECT id, type, amount, category, description, date, extra
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var typ string
		var extra sql.NullString
		if err := rows.Scan(&t.ID, &typ, &t.Amount, &t.Category, &t.Description, &t.Date, &extra); err != nil {
			return nil, err
		}
		t.Type = model.TransactionType(typ)
		if extra.Valid && extra.String != "" {
			if err := json.Unmarshal([]byte(extra.String), &t.Extra); err != nil {
				return nil, fmt.Errorf("decoding extra fields of %s: %w", t.ID, err)
			}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Categories returns the archived category names in canonical form.
func (a *Archive) Categories() ([]string, error) {
	rows, err := a.db.Query("SELECT name FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Count returns the number of archived transactions.
func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&n)
	return n, err
}

// Exports returns every recorded snapshot, newest first.
func (a *Archive) Exports() ([]Export, error) {
	rows, err := a.db.Query(`SELECT exported_at, transactions, categories, total_income, total_expense
		FROM exports ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Export
	for rows.Next() {
		var e Export
		var at string
		if err := rows.Scan(&at, &e.Transactions, &e.Categories, &e.TotalIncome, &e.TotalExpense); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			e.At = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
