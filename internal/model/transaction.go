// Package model defines the ledger's data types.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the only accepted transaction date format (ISO calendar date).
const DateLayout = "2006-01-02"

// TransactionType tells income apart from expenses.
type TransactionType string

const (
	// Expense is money leaving the ledger. Records persisted before the
	// type field existed are all expenses.
	Expense TransactionType = "Expense"
	// Income is money entering the ledger.
	Income TransactionType = "Income"
)

// TransactionTypes lists the valid types in display order.
var TransactionTypes = []TransactionType{Expense, Income}

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == Expense || t == Income
}

// ParseTransactionType accepts "expense"/"income" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense":
		return Expense, nil
	case "income":
		return Income, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is a single recorded income or expense event.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      float64
	Category    string // lowercase canonical form
	Description string
	Date        string // DateLayout

	// Extra holds persisted fields this version does not know about.
	// They are written back unchanged.
	Extra map[string]json.RawMessage
}

// knownFields is the persisted field order.
var knownFields = []string{"id", "type", "amount", "category", "description", "date"}

func isKnownField(name string) bool {
	for _, f := range knownFields {
		if f == name {
			return true
		}
	}
	return false
}

// ParsedDate returns the transaction date as a time.Time in UTC.
func (t Transaction) ParsedDate() (time.Time, error) {
	return ParseDate(t.Date)
}

// ShortID returns the first 8 characters of the id.
func (t Transaction) ShortID() string {
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}

// Clone returns a deep copy, including the Extra map.
func (t Transaction) Clone() Transaction {
	if t.Extra != nil {
		extra := make(map[string]json.RawMessage, len(t.Extra))
		for k, v := range t.Extra {
			extra[k] = append(json.RawMessage(nil), v...)
		}
		t.Extra = extra
	}
	return t
}

// MarshalJSON writes the known fields in schema order followed by any extra
// fields sorted by key.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		val, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		buf.Write(val)
		return nil
	}

	fields := []struct {
		key string
		val any
	}{
		{"id", t.ID},
		{"type", t.Type},
		{"amount", t.Amount},
		{"category", t.Category},
		{"description", t.Description},
		{"date", t.Date},
	}
	for _, f := range fields {
		if err := write(f.key, f.val); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(t.Extra))
	for k := range t.Extra {
		if !isKnownField(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, t.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the known fields and keeps everything else in Extra.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("transaction is not an object")
	}

	var out Transaction
	targets := map[string]any{
		"id":          &out.ID,
		"type":        &out.Type,
		"amount":      &out.Amount,
		"category":    &out.Category,
		"description": &out.Description,
		"date":        &out.Date,
	}
	for key, val := range raw {
		target, ok := targets[key]
		if !ok {
			if out.Extra == nil {
				out.Extra = make(map[string]json.RawMessage)
			}
			out.Extra[key] = val
			continue
		}
		if bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(val, target); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}

	*t = out
	return nil
}

// ParseDate parses s strictly as YYYY-MM-DD and rejects impossible dates.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// Today returns the current local date formatted with DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
