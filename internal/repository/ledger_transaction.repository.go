package repository

import (
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type LedgerTransactionRepository interface {
	Add(tx *sql.Tx, transaction model.LedgerTransaction) (*model.LedgerTransaction, error)
	// List returns transactions most-recent-first.
	List(tx *sql.Tx, filter LedgerTransactionListFilter) ([]model.LedgerTransaction, error)
}

type LedgerTransactionListFilter struct {
	UserAccountID uuid.UUID
	Symbol        *string
}

type ledgerTransactionRepositoryHandler struct {
	Db *sql.DB
}

func NewLedgerTransactionRepository(db *sql.DB) LedgerTransactionRepository {
	return ledgerTransactionRepositoryHandler{Db: db}
}

func (h ledgerTransactionRepositoryHandler) Add(tx *sql.Tx, transaction model.LedgerTransaction) (*model.LedgerTransaction, error) {
	transaction.CreatedAt = time.Now().UTC()
	query := table.LedgerTransaction.
		INSERT(table.LedgerTransaction.MutableColumns).
		MODEL(transaction).
		RETURNING(table.LedgerTransaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.LedgerTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ledger transaction: %w", err)
	}

	return &out, nil
}

func (h ledgerTransactionRepositoryHandler) List(tx *sql.Tx, filter LedgerTransactionListFilter) ([]model.LedgerTransaction, error) {
	t := table.LedgerTransaction

	whereClause := t.UserAccountID.EQ(postgres.UUID(filter.UserAccountID))
	if filter.Symbol != nil {
		whereClause = whereClause.AND(t.Symbol.EQ(postgres.String(*filter.Symbol)))
	}

	query := t.SELECT(t.AllColumns).
		WHERE(whereClause).
		ORDER_BY(t.CreatedAt.DESC(), t.LedgerTransactionID.DESC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.LedgerTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}

	return out, nil
}
