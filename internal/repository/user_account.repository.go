package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"
	"papertrade/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserAccountRepository interface {
	Add(tx *sql.Tx, account model.UserAccount) (*model.UserAccount, error)
	Get(userAccountID uuid.UUID) (*model.UserAccount, error)
	GetByUsername(username string) (*model.UserAccount, error)
	// GetForUpdate locks the account row for the duration of tx. Every
	// cash mutation must read the balance through this lock so that
	// check-then-act sequences on the same account serialize.
	GetForUpdate(tx *sql.Tx, userAccountID uuid.UUID) (*model.UserAccount, error)
	UpdateCash(tx *sql.Tx, userAccountID uuid.UUID, cash decimal.Decimal) error
}

type userAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{Db: db}
}

func (h userAccountRepositoryHandler) Add(tx *sql.Tx, account model.UserAccount) (*model.UserAccount, error) {
	account.CreatedAt = time.Now().UTC()
	account.UpdatedAt = time.Now().UTC()
	query := table.UserAccount.
		INSERT(table.UserAccount.MutableColumns).
		MODEL(account).
		RETURNING(table.UserAccount.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.UserAccount{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user account: %w", err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) Get(userAccountID uuid.UUID) (*model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		WHERE(table.UserAccount.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account %s: %w", userAccountID, err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) GetByUsername(username string) (*model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		WHERE(table.UserAccount.Username.EQ(postgres.String(username)))

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrUnauthenticated
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user account by username: %w", err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) GetForUpdate(tx *sql.Tx, userAccountID uuid.UUID) (*model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		WHERE(table.UserAccount.UserAccountID.EQ(postgres.UUID(userAccountID))).
		FOR(postgres.UPDATE())

	out := model.UserAccount{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user account %s: %w", userAccountID, err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) UpdateCash(tx *sql.Tx, userAccountID uuid.UUID, cash decimal.Decimal) error {
	update := model.UserAccount{
		Cash:      cash,
		UpdatedAt: time.Now().UTC(),
	}
	query := table.UserAccount.
		UPDATE(table.UserAccount.Cash, table.UserAccount.UpdatedAt).
		MODEL(update).
		WHERE(table.UserAccount.UserAccountID.EQ(postgres.UUID(userAccountID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update cash for %s: %w", userAccountID, err)
	}

	return nil
}
