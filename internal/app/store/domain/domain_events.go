package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// EventRecorder receives domain events as the store emits them. The
// store calls Record while holding its own lock, so implementations
// must not call back into the store.
type EventRecorder interface {
	Record(event DomainEvent)
}

// EventRecorderFunc adapts a plain function to the EventRecorder
// interface.
type EventRecorderFunc func(DomainEvent)

// Record calls f(event).
func (f EventRecorderFunc) Record(event DomainEvent) { f(event) }

// OrderPlacedEvent is emitted when an order commits in full.
type OrderPlacedEvent struct {
	OrderID  string
	Lines    []LineReceipt
	Total    Money
	PlacedAt time.Time
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}

// ProductDeactivatedEvent is emitted when an order drains a product's
// stock and the store deactivates it at the end of the commit.
type ProductDeactivatedEvent struct {
	ProductName string
	OrderID     string
}

func (e *ProductDeactivatedEvent) EventType() string {
	return "product.deactivated"
}

func (e *ProductDeactivatedEvent) AggregateID() string {
	return e.ProductName
}

// ProductAddedEvent is emitted when a product joins the catalog.
type ProductAddedEvent struct {
	ProductName string
}

func (e *ProductAddedEvent) EventType() string {
	return "product.added"
}

func (e *ProductAddedEvent) AggregateID() string {
	return e.ProductName
}

// ProductRemovedEvent is emitted when a product leaves the catalog.
type ProductRemovedEvent struct {
	ProductName string
}

func (e *ProductRemovedEvent) EventType() string {
	return "product.removed"
}

func (e *ProductRemovedEvent) AggregateID() string {
	return e.ProductName
}
