package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Repositories obtained before Begin run each statement on the main
// connection with per-step durability; the booking saga relies on this
// and compensates instead of rolling back.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository bound to the current
	// transaction, or to the main connection when none is active.
	RequestRepository() RequestRepository

	// LoadRepository returns a LoadRepository bound to the current
	// transaction, or to the main connection when none is active.
	LoadRepository() LoadRepository

	// ShipmentRepository returns a ShipmentRepository bound to the
	// current transaction, or to the main connection when none is active.
	ShipmentRepository() ShipmentRepository
}
