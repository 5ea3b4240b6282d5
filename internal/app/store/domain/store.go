package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// LineItem is one (product, quantity) pair in an order request.
type LineItem struct {
	Product  Product
	Quantity int64
}

// LineReceipt is the committed record for one order line.
type LineReceipt struct {
	ProductName string
	Quantity    int64
	LinePrice   Money
}

// OrderReceipt summarizes a committed order.
type OrderReceipt struct {
	ID       string
	PlacedAt time.Time
	Lines    []LineReceipt
	Total    Money
}

// Store owns the product catalog and executes order transactions.
//
// The catalog is an ordered collection: listing preserves insertion
// order, and duplicate names are permitted and never merged. All state
// is guarded by a single store-scoped lock, which makes Order atomic
// with respect to concurrent orders touching overlapping products and
// keeps readers from observing a half-committed batch.
type Store struct {
	mu       sync.RWMutex
	products []Product
	clock    clock.Clock
	recorder EventRecorder
}

// NewStore creates a Store over the given product list. The recorder
// may be nil when no event sink is wired.
func NewStore(products []Product, clk clock.Clock, recorder EventRecorder) *Store {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Store{
		products: append([]Product(nil), products...),
		clock:    clk,
		recorder: recorder,
	}
}

// AddProduct appends a product to the catalog.
func (s *Store) AddProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	s.record(&ProductAddedEvent{ProductName: p.Name()})
}

// RemoveProduct removes a product by identity. Removing a product that
// is not present is a no-op. The product itself is untouched, so
// re-adding it restores the previous presence exactly.
func (s *Store) RemoveProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, held := range s.products {
		if held == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.record(&ProductRemovedEvent{ProductName: p.Name()})
			return
		}
	}
}

// Contains reports whether the store holds the given product reference.
func (s *Store) Contains(p Product) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.holds(p)
}

// ContainsName reports whether any held product carries the given name.
func (s *Store) ContainsName(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Name() == name {
			return true
		}
	}
	return false
}

// FindByName returns the first held product with the given name in
// catalog order.
func (s *Store) FindByName(name string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Products returns a snapshot of the full catalog in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Product(nil), s.products...)
}

// ActiveProducts returns the currently active products in catalog
// order. The snapshot reflects state at call time and may go stale if
// the catalog is mutated afterwards.
func (s *Store) ActiveProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// TotalStock sums the tracked stock over all held products, regardless
// of the active flag.
func (s *Store) TotalStock() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, p := range s.products {
		total += p.Stock()
	}
	return total
}

// TotalStockReport renders the stock total for display.
func (s *Store) TotalStockReport() string {
	return fmt.Sprintf("Total of %d items in store", s.TotalStock())
}

// Merge returns a new Store holding the products of s followed by the
// products of other. Both catalogs are left untouched. Intended for
// catalog assembly, not for concurrent use against two live stores.
func (s *Store) Merge(other *Store) *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	combined := make([]Product, 0, len(s.products)+len(other.products))
	combined = append(combined, s.products...)
	combined = append(combined, other.products...)
	return NewStore(combined, s.clock, s.recorder)
}

// Order executes a multi-line order as a two-phase transaction.
//
// Phase one validates every line against current state without
// mutating anything: the product must be held by the store and active,
// per-order caps are enforced ahead of stock, and stock checks account
// for quantities earlier lines already claimed from the same product.
// Any failure rejects the whole order with zero mutation.
//
// Phase two cannot fail. Each line is priced through the product's own
// promotion-aware policy and applied in input order, so two lines for
// the same product see the shrinking stock sequentially. Deactivation
// of depleted products is deferred until every line has committed, so
// a later line is never rejected or mispriced because an earlier line
// of the same order drained a shared product.
func (s *Store) Order(lines []LineItem) (*OrderReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	reserved := make(map[Product]int64, len(lines))
	for _, line := range lines {
		if !s.holds(line.Product) {
			return nil, fmt.Errorf("%s: %w", line.Product.Name(), ErrProductNotFound)
		}
		if err := line.Product.validateLine(line.Quantity, reserved[line.Product]); err != nil {
			return nil, err
		}
		reserved[line.Product] += line.Quantity
	}

	receipt := &OrderReceipt{
		ID:       uuid.New().String(),
		PlacedAt: s.clock.Now(),
		Lines:    make([]LineReceipt, 0, len(lines)),
		Total:    NewMoney(0),
	}
	for _, line := range lines {
		linePrice := line.Product.commitLine(line.Quantity)
		receipt.Lines = append(receipt.Lines, LineReceipt{
			ProductName: line.Product.Name(),
			Quantity:    line.Quantity,
			LinePrice:   linePrice,
		})
		receipt.Total = receipt.Total.Add(linePrice)
	}

	// Settle active state once per product, in first-seen line order.
	settled := make(map[Product]bool, len(reserved))
	for _, line := range lines {
		if settled[line.Product] {
			continue
		}
		settled[line.Product] = true

		wasActive := line.Product.IsActive()
		line.Product.settleStock()
		if wasActive && !line.Product.IsActive() {
			s.record(&ProductDeactivatedEvent{
				ProductName: line.Product.Name(),
				OrderID:     receipt.ID,
			})
		}
	}

	s.record(&OrderPlacedEvent{
		OrderID:  receipt.ID,
		Lines:    receipt.Lines,
		Total:    receipt.Total,
		PlacedAt: receipt.PlacedAt,
	})

	return receipt, nil
}

// holds reports reference membership; callers must hold the lock.
func (s *Store) holds(p Product) bool {
	for _, held := range s.products {
		if held == p {
			return true
		}
	}
	return false
}

func (s *Store) record(event DomainEvent) {
	if s.recorder != nil {
		s.recorder.Record(event)
	}
}
