package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/spf13/afero"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
)

// CategoryHeader is the single column of a category file.
const CategoryHeader = "Category"

// CategoryStore is an ordered list of category names backed by a one-column
// CSV file. Expense and income categories each get their own store.
type CategoryStore struct {
	table *csvTable
	kind  model.CategoryKind
	mu    sync.RWMutex
}

// NewCategoryStore creates a store over the file at path.
func NewCategoryStore(fs afero.Fs, path string, kind model.CategoryKind) *CategoryStore {
	return &CategoryStore{
		table: newCSVTable(fs, path, CategoryHeader),
		kind:  kind,
	}
}

// Kind reports which namespace the store holds.
func (s *CategoryStore) Kind() model.CategoryKind {
	return s.kind
}

// List returns every category in file order.
//
// Reads are lenient: a missing, unreadable, or corrupt file produces an empty
// list and a warning instead of an error. Categories only feed the entry
// forms, so the ledger is never affected by this.
func (s *CategoryStore) List(ctx context.Context) []model.Category {
	if err := validateContext(ctx); err != nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if ok, err := s.table.exists(); err == nil && !ok {
		return nil
	}

	names, err := s.load()
	if err != nil {
		common.LogWarn("category file unreadable, showing no categories", common.Fields{
			"kind":  s.kind,
			"path":  s.table.path,
			"error": err.Error(),
		})
		return nil
	}
	return names
}

// Add appends name if it is not already present (exact match) and reports
// whether it did. Blank names are ignored. Unlike List, Add refuses to touch a
// corrupt file, since rewriting it would drop whatever it still holds.
func (s *CategoryStore) Add(ctx context.Context, name model.Category) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if blank(name) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.table.exists()
	if err != nil {
		return false, err
	}

	var names []model.Category
	if ok {
		names, err = s.load()
		if err != nil {
			return false, fmt.Errorf("failed to load %s categories: %w", s.kind, err)
		}
	}

	if slices.Contains(names, name) {
		common.LogDebug("category already present", common.Fields{"kind": s.kind, "name": name})
		return false, nil
	}

	names = append(names, name)
	if err := s.save(names); err != nil {
		return false, err
	}

	common.LogDebug("added category", common.Fields{"kind": s.kind, "name": name, "count": len(names)})
	return true, nil
}

// ReplaceAll overwrites the store with names exactly as given. Duplicates and
// empty names are kept; this is the bulk-edit path and it does not validate.
func (s *CategoryStore) ReplaceAll(ctx context.Context, names []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(names); err != nil {
		return err
	}

	common.LogDebug("replaced categories", common.Fields{"kind": s.kind, "count": len(names)})
	return nil
}

// ReadCategories reads a one-column category file strictly: a missing or
// malformed file is common.ErrStorageUnreadable, while a header-only file is
// an empty list. It backs bulk imports, where silently reading nothing would
// wipe the store.
func ReadCategories(fs afero.Fs, path string) ([]model.Category, error) {
	return loadCategories(newCSVTable(fs, path, CategoryHeader))
}

func (s *CategoryStore) load() ([]model.Category, error) {
	return loadCategories(s.table)
}

func loadCategories(table *csvTable) ([]model.Category, error) {
	rows, err := table.read()
	if err != nil {
		return nil, err
	}

	names := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		names = append(names, row[0])
	}
	return names, nil
}

func (s *CategoryStore) save(names []model.Category) error {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}

	if err := s.table.write(rows); err != nil {
		return fmt.Errorf("failed to save %s categories: %w", s.kind, err)
	}
	return nil
}
