package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/google/uuid"
)

// ErrCorruptStorage means a persisted file could not be parsed as the
// expected structure.
var ErrCorruptStorage = errors.New("corrupt storage")

// Migrate parses raw transaction file content and upgrades every record to
// the current schema. Records without an id get a new UUID and records
// without a type become expenses, since every legacy record predates income
// tracking. All other fields, including unknown ones, are left untouched.
// changed reports whether any record was altered; the caller must persist
// the result before first use so later loads are migration-free.
func Migrate(raw []byte) (txs []model.Transaction, changed bool, err error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false, fmt.Errorf("%w: empty document", ErrCorruptStorage)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
	}

	txs = make([]model.Transaction, 0, len(records))
	for i, rec := range records {
		var t model.Transaction
		if err := json.Unmarshal(rec, &t); err != nil {
			return nil, false, fmt.Errorf("%w: record %d: %v", ErrCorruptStorage, i, err)
		}
		if migrateRecord(&t) {
			changed = true
		}
		txs = append(txs, t)
	}
	return txs, changed, nil
}

func migrateRecord(t *model.Transaction) bool {
	changed := false
	if t.ID == "" {
		t.ID = uuid.NewString()
		changed = true
	}
	if t.Type == "" {
		t.Type = model.Expense
		changed = true
	}
	return changed
}
