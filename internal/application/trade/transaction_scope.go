package trade

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/trade"
)

// TransactionScope runs a function against repositories that share one
// database transaction. An error returned by fn rolls everything back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories are the repositories an order confirmation writes to
type TransactionalRepositories interface {
	OrderRepo() trade.SalesOrderRepository
	PickingRepo() inventory.PickingRepository
}

// NoOpTransactionScope calls fn with plain repositories and no transaction.
// Unit tests use it with mocks.
type NoOpTransactionScope struct {
	orderRepo   trade.SalesOrderRepository
	pickingRepo inventory.PickingRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(orderRepo trade.SalesOrderRepository, pickingRepo inventory.PickingRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{orderRepo: orderRepo, pickingRepo: pickingRepo}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) OrderRepo() trade.SalesOrderRepository    { return s.orderRepo }
func (s *NoOpTransactionScope) PickingRepo() inventory.PickingRepository { return s.pickingRepo }

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
