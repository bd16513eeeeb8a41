package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	"papertrade/internal/events"
	"papertrade/internal/logger"
	"papertrade/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const lookupTimeout = 5 * time.Second

// LedgerService owns every mutation of an account's cash balance and its
// append-only transaction history. Each mutation runs in one sql.Tx with
// the account row locked, so the balance check and the balance update are
// atomic with respect to other operations on the same account. Operations
// on different accounts never contend.
type LedgerService interface {
	Buy(ctx context.Context, userAccountID uuid.UUID, symbol string, quantity int64) (*model.LedgerTransaction, error)
	Sell(ctx context.Context, userAccountID uuid.UUID, symbol string, quantity int64) (*model.LedgerTransaction, error)
	Deposit(ctx context.Context, userAccountID uuid.UUID, amount decimal.Decimal) (*model.UserAccount, error)
	Portfolio(ctx context.Context, userAccountID uuid.UUID) (*domain.Portfolio, error)
	History(ctx context.Context, userAccountID uuid.UUID) ([]model.LedgerTransaction, error)
}

type ledgerServiceHandler struct {
	Db                          *sql.DB
	UserAccountRepository       repository.UserAccountRepository
	LedgerTransactionRepository repository.LedgerTransactionRepository
	QuoteRepository             repository.QuoteRepository
	Publisher                   events.Publisher
}

func NewLedgerService(
	db *sql.DB,
	userAccountRepository repository.UserAccountRepository,
	ledgerTransactionRepository repository.LedgerTransactionRepository,
	quoteRepository repository.QuoteRepository,
	publisher events.Publisher,
) LedgerService {
	return ledgerServiceHandler{
		Db:                          db,
		UserAccountRepository:       userAccountRepository,
		LedgerTransactionRepository: ledgerTransactionRepository,
		QuoteRepository:             quoteRepository,
		Publisher:                   publisher,
	}
}

func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("symbol is required: %w", domain.ErrInvalidInput)
	}
	return symbol, nil
}

// lookup resolves the current unit price before any lock is taken, so the
// critical section never waits on the network.
func (h ledgerServiceHandler) lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	return h.QuoteRepository.Lookup(ctx, symbol)
}

func (h ledgerServiceHandler) Buy(ctx context.Context, userAccountID uuid.UUID, symbol string, quantity int64) (*model.LedgerTransaction, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("share quantity must be positive, got %d: %w", quantity, domain.ErrInvalidInput)
	}

	quote, err := h.lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := h.UserAccountRepository.GetForUpdate(tx, userAccountID)
	if err != nil {
		return nil, err
	}

	cost := quote.Price.Mul(decimal.NewFromInt(quantity))
	if cost.GreaterThan(account.Cash) {
		return nil, fmt.Errorf("buying %d %s costs %s but balance is %s: %w",
			quantity, symbol, cost, account.Cash, domain.ErrInsufficientFunds)
	}

	err = h.UserAccountRepository.UpdateCash(tx, userAccountID, account.Cash.Sub(cost))
	if err != nil {
		return nil, err
	}

	inserted, err := h.LedgerTransactionRepository.Add(tx, model.LedgerTransaction{
		UserAccountID: userAccountID,
		Symbol:        symbol,
		Quantity:      quantity,
		Price:         quote.Price,
	})
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	h.publish(ctx, *inserted)

	return inserted, nil
}

func (h ledgerServiceHandler) Sell(ctx context.Context, userAccountID uuid.UUID, symbol string, quantity int64) (*model.LedgerTransaction, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("share quantity must be positive, got %d: %w", quantity, domain.ErrInvalidInput)
	}

	quote, err := h.lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The row lock also serializes the holdings read below: no other
	// mutation for this account can commit between the check and the
	// insert.
	account, err := h.UserAccountRepository.GetForUpdate(tx, userAccountID)
	if err != nil {
		return nil, err
	}

	transactions, err := h.LedgerTransactionRepository.List(tx, repository.LedgerTransactionListFilter{
		UserAccountID: userAccountID,
		Symbol:        &symbol,
	})
	if err != nil {
		return nil, err
	}

	held := domain.NetShares(transactions, symbol)
	if held < quantity {
		return nil, fmt.Errorf("selling %d %s but only %d held: %w",
			quantity, symbol, held, domain.ErrInsufficientHoldings)
	}

	proceeds := quote.Price.Mul(decimal.NewFromInt(quantity))
	err = h.UserAccountRepository.UpdateCash(tx, userAccountID, account.Cash.Add(proceeds))
	if err != nil {
		return nil, err
	}

	inserted, err := h.LedgerTransactionRepository.Add(tx, model.LedgerTransaction{
		UserAccountID: userAccountID,
		Symbol:        symbol,
		Quantity:      -quantity,
		Price:         quote.Price,
	})
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	h.publish(ctx, *inserted)

	return inserted, nil
}

func (h ledgerServiceHandler) Deposit(ctx context.Context, userAccountID uuid.UUID, amount decimal.Decimal) (*model.UserAccount, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("deposit amount must be >= 0, got %s: %w", amount, domain.ErrInvalidInput)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := h.UserAccountRepository.GetForUpdate(tx, userAccountID)
	if err != nil {
		return nil, err
	}

	newCash := account.Cash.Add(amount)
	err = h.UserAccountRepository.UpdateCash(tx, userAccountID, newCash)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	account.Cash = newCash
	return account, nil
}

func (h ledgerServiceHandler) Portfolio(ctx context.Context, userAccountID uuid.UUID) (*domain.Portfolio, error) {
	account, err := h.UserAccountRepository.Get(userAccountID)
	if err != nil {
		return nil, err
	}

	transactions, err := h.LedgerTransactionRepository.List(nil, repository.LedgerTransactionListFilter{
		UserAccountID: userAccountID,
	})
	if err != nil {
		return nil, err
	}

	return &domain.Portfolio{
		Positions: domain.PositionsFromTransactions(transactions),
		Cash:      account.Cash,
	}, nil
}

func (h ledgerServiceHandler) History(ctx context.Context, userAccountID uuid.UUID) ([]model.LedgerTransaction, error) {
	return h.LedgerTransactionRepository.List(nil, repository.LedgerTransactionListFilter{
		UserAccountID: userAccountID,
	})
}

func (h ledgerServiceHandler) publish(ctx context.Context, transaction model.LedgerTransaction) {
	err := h.Publisher.PublishTransactionCompleted(ctx, events.TransactionCompleted{
		LedgerTransactionID: transaction.LedgerTransactionID,
		UserAccountID:       transaction.UserAccountID,
		Symbol:              transaction.Symbol,
		Quantity:            transaction.Quantity,
		Price:               transaction.Price,
		OccurredAt:          transaction.CreatedAt,
	})
	if err != nil {
		logger.FromContext(ctx).Warnw("failed to publish transaction event",
			"ledgerTransactionID", transaction.LedgerTransactionID, "err", err)
	}
}
