package ledger

import (
	"strings"

	"github.com/theirongolddev/fintrack/internal/model"
)

// AddTransaction validates in, assigns a fresh id, appends the record and
// persists the collection.
func (l *Ledger) AddTransaction(in TransactionInput) (model.Transaction, error) {
	const op = "add transaction"

	in, err := l.validate(op, in)
	if err != nil {
		return model.Transaction{}, err
	}

	id := l.newID()
	for l.indexOf(id) >= 0 {
		id = l.newID()
	}

	t := model.Transaction{
		ID:          id,
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
	}

	next := make([]model.Transaction, len(l.transactions), len(l.transactions)+1)
	copy(next, l.transactions)
	next = append(next, t)

	if err := l.commitTransactions(op, next); err != nil {
		return model.Transaction{}, err
	}
	l.logger.Info("transaction added", "id", t.ID, "type", t.Type, "amount", t.Amount, "category", t.Category)
	return t.Clone(), nil
}

// EditTransaction replaces every editable field of the record with the given
// id. The id and any unknown persisted fields are preserved.
func (l *Ledger) EditTransaction(id string, in TransactionInput) (model.Transaction, error) {
	const op = "edit transaction"

	i := l.indexOf(id)
	if i < 0 {
		return model.Transaction{}, opError(op, "id", id, ErrNotFound)
	}
	in, err := l.validate(op, in)
	if err != nil {
		return model.Transaction{}, err
	}

	next := make([]model.Transaction, len(l.transactions))
	copy(next, l.transactions)
	t := next[i].Clone()
	t.Type = in.Type
	t.Amount = in.Amount
	t.Category = in.Category
	t.Description = in.Description
	t.Date = in.Date
	next[i] = t

	if err := l.commitTransactions(op, next); err != nil {
		return model.Transaction{}, err
	}
	l.logger.Info("transaction edited", "id", id)
	return t.Clone(), nil
}

// DeleteTransaction removes the record with the given id.
func (l *Ledger) DeleteTransaction(id string) error {
	const op = "delete transaction"

	i := l.indexOf(id)
	if i < 0 {
		return opError(op, "id", id, ErrNotFound)
	}

	next := make([]model.Transaction, 0, len(l.transactions)-1)
	next = append(next, l.transactions[:i]...)
	next = append(next, l.transactions[i+1:]...)

	if err := l.commitTransactions(op, next); err != nil {
		return err
	}
	l.logger.Info("transaction deleted", "id", id)
	return nil
}

// ResolveID finds the full id for an exact id or a unique prefix of at
// least 8 characters, the length shells display.
func (l *Ledger) ResolveID(ref string) (string, error) {
	const op = "resolve id"

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", opError(op, "id", "", ErrMissingField)
	}
	if l.indexOf(ref) >= 0 {
		return ref, nil
	}
	if len(ref) < 8 {
		return "", opError(op, "id", ref, ErrNotFound)
	}

	match := ""
	for _, t := range l.transactions {
		if strings.HasPrefix(t.ID, ref) {
			if match != "" {
				return "", opError(op, "id", ref, ErrAmbiguousID)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", opError(op, "id", ref, ErrNotFound)
	}
	return match, nil
}

// commitTransactions persists next and only then swaps it in, so a failed
// write leaves memory matching the last good file.
func (l *Ledger) commitTransactions(op string, next []model.Transaction) error {
	if err := l.storage.SaveTransactions(next); err != nil {
		return opError(op, "", "", err)
	}
	l.transactions = next
	return nil
}
