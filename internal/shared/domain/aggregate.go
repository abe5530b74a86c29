package domain

import (
	"time"

	"github.com/google/uuid"
)

// AggregateRoot is the root of a consistency boundary persisted as one document.
type AggregateRoot interface {
	ID() uuid.UUID
	DomainEvents() []DomainEvent
	ClearDomainEvents()
	Version() int
}

// BaseAggregateRoot provides identity, timestamps, pending events and the
// optimistic concurrency version shared by all aggregates.
type BaseAggregateRoot struct {
	id           uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []DomainEvent
	version      int
}

// NewBaseAggregateRoot creates an aggregate root with a generated ID.
func NewBaseAggregateRoot(now time.Time) BaseAggregateRoot {
	now = now.UTC()
	return BaseAggregateRoot{
		id:           uuid.New(),
		createdAt:    now,
		updatedAt:    now,
		domainEvents: make([]DomainEvent, 0),
	}
}

// RehydrateBaseAggregateRoot recreates an aggregate root from persisted state.
func RehydrateBaseAggregateRoot(id uuid.UUID, createdAt, updatedAt time.Time, version int) BaseAggregateRoot {
	return BaseAggregateRoot{
		id:           id,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		domainEvents: make([]DomainEvent, 0),
		version:      version,
	}
}

func (a *BaseAggregateRoot) ID() uuid.UUID        { return a.id }
func (a *BaseAggregateRoot) CreatedAt() time.Time { return a.createdAt }
func (a *BaseAggregateRoot) UpdatedAt() time.Time { return a.updatedAt }

// Touch updates the updatedAt timestamp.
func (a *BaseAggregateRoot) Touch(now time.Time) {
	a.updatedAt = now.UTC()
}

// DomainEvents returns all uncommitted domain events.
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents removes all uncommitted domain events.
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = make([]DomainEvent, 0)
}

// AddDomainEvent records a domain event on the aggregate.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// Version returns the version the aggregate was loaded at.
func (a *BaseAggregateRoot) Version() int {
	return a.version
}

// IncrementVersion bumps the version after a successful write.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.version++
}
