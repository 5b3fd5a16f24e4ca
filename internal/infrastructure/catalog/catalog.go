package catalog

import (
	"sort"
	"sync"

	"github.com/lawalalx/foodplan/internal/domain"
)

// Holder is the in-memory product catalog. Reads vastly outnumber writes, so
// matching works on immutable snapshots while refreshes swap or merge the
// underlying map.
type Holder struct {
	mutex    sync.RWMutex
	products map[string]domain.Product
}

// NewHolder creates a catalog holder seeded with the given products.
func NewHolder(products []domain.Product) *Holder {
	h := &Holder{products: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		h.products[p.ID] = p
	}
	return h
}

// Replace swaps the entire catalog for the given products.
func (h *Holder) Replace(products []domain.Product) {
	next := make(map[string]domain.Product, len(products))
	for _, p := range products {
		next[p.ID] = p
	}
	h.mutex.Lock()
	h.products = next
	h.mutex.Unlock()
}

// Upsert merges products into the catalog, last write wins per product ID.
func (h *Holder) Upsert(products []domain.Product) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, p := range products {
		h.products[p.ID] = p
	}
}

// Snapshot returns a copy of the catalog sorted by product ID.
func (h *Holder) Snapshot() []domain.Product {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	snapshot := make([]domain.Product, 0, len(h.products))
	for _, p := range h.products {
		snapshot = append(snapshot, p)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].ID < snapshot[j].ID
	})
	return snapshot
}

// Len returns the number of products in the catalog.
func (h *Holder) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.products)
}

// MealBook is the in-memory collection of known meals used by the
// recommendation engine.
type MealBook struct {
	mutex sync.RWMutex
	meals []domain.Meal
}

// NewMealBook creates a meal book seeded with the given meals.
func NewMealBook(meals []domain.Meal) *MealBook {
	book := &MealBook{meals: make([]domain.Meal, len(meals))}
	copy(book.meals, meals)
	return book
}

// Replace swaps the known meals.
func (b *MealBook) Replace(meals []domain.Meal) {
	next := make([]domain.Meal, len(meals))
	copy(next, meals)
	b.mutex.Lock()
	b.meals = next
	b.mutex.Unlock()
}

// Snapshot returns a copy of the known meals.
func (b *MealBook) Snapshot() []domain.Meal {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	snapshot := make([]domain.Meal, len(b.meals))
	copy(snapshot, b.meals)
	return snapshot
}
