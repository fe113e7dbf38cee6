package ledger

import (
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"
)

// AddCategory normalizes name and inserts it into the category set, which
// stays alphabetically ordered. Duplicates are detected case-insensitively.
func (l *Ledger) AddCategory(name string) (string, error) {
	const op = "add category"

	c := model.NormalizeCategory(name)
	if c == "" {
		return "", opError(op, "name", "", ErrMissingField)
	}
	if l.categoryIndex(c) >= 0 {
		return "", opError(op, "name", c, ErrAlreadyExists)
	}

	next := make([]string, len(l.categories), len(l.categories)+1)
	copy(next, l.categories)
	next = append(next, c)
	sort.Strings(next)

	if err := l.commitCategories(op, next); err != nil {
		return "", err
	}
	l.logger.Info("category added", "category", c)
	return c, nil
}

// RemoveCategory deletes an unreferenced category.
func (l *Ledger) RemoveCategory(name string) error {
	const op = "remove category"

	c := model.NormalizeCategory(name)
	i := l.categoryIndex(c)
	if i < 0 {
		return opError(op, "name", c, ErrNotFound)
	}
	if n := l.CategoryUsage(c); n > 0 {
		return opError(op, "name", c, ErrCategoryInUse)
	}

	next := make([]string, 0, len(l.categories)-1)
	next = append(next, l.categories[:i]...)
	next = append(next, l.categories[i+1:]...)

	if err := l.commitCategories(op, next); err != nil {
		return err
	}
	l.logger.Info("category removed", "category", c)
	return nil
}

// HasCategory reports whether name exists, ignoring case.
func (l *Ledger) HasCategory(name string) bool {
	return l.categoryIndex(model.NormalizeCategory(name)) >= 0
}

// CategoryUsage counts the transactions that reference name.
func (l *Ledger) CategoryUsage(name string) int {
	c := model.NormalizeCategory(name)
	n := 0
	for _, t := range l.transactions {
		if model.NormalizeCategory(t.Category) == c {
			n++
		}
	}
	return n
}

func (l *Ledger) categoryIndex(canonical string) int {
	i := sort.SearchStrings(l.categories, canonical)
	if i < len(l.categories) && l.categories[i] == canonical {
		return i
	}
	return -1
}

// commitCategories persists the display-cased list, then swaps next in.
func (l *Ledger) commitCategories(op string, next []string) error {
	display := make([]string, len(next))
	for i, c := range next {
		display[i] = model.DisplayCategory(c)
	}
	if err := l.storage.SaveCategories(display); err != nil {
		return opError(op, "", "", err)
	}
	l.categories = next
	return nil
}
