package persistence

import (
	"context"

	apptrade "github.com/Olpagroup25/insa/internal/application/trade"
	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTradeTransactionScope implements apptrade.TransactionScope on a Database transaction
type GormTradeTransactionScope struct {
	db *Database
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *Database) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs fn with repositories bound to a single transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		return fn(&gormTradeRepositories{tx: tx})
	})
}

type gormTradeRepositories struct {
	tx *gorm.DB
}

func (r *gormTradeRepositories) OrderRepo() trade.SalesOrderRepository {
	return NewGormSalesOrderRepository(r.tx)
}

func (r *gormTradeRepositories) PickingRepo() inventory.PickingRepository {
	return NewGormPickingRepository(r.tx)
}

var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
