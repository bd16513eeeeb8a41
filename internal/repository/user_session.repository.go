package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type UserSessionRepository interface {
	Add(session model.UserSession) (*model.UserSession, error)
	Get(userSessionID uuid.UUID) (*model.UserSession, error)
	Delete(userSessionID uuid.UUID) error
}

type userSessionRepositoryHandler struct {
	Db *sql.DB
}

func NewUserSessionRepository(db *sql.DB) UserSessionRepository {
	return userSessionRepositoryHandler{Db: db}
}

func (h userSessionRepositoryHandler) Add(session model.UserSession) (*model.UserSession, error) {
	session.CreatedAt = time.Now().UTC()
	query := table.UserSession.
		INSERT(table.UserSession.MutableColumns).
		MODEL(session).
		RETURNING(table.UserSession.AllColumns)

	out := model.UserSession{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user session: %w", err)
	}

	return &out, nil
}

func (h userSessionRepositoryHandler) Get(userSessionID uuid.UUID) (*model.UserSession, error) {
	query := table.UserSession.
		SELECT(table.UserSession.AllColumns).
		WHERE(table.UserSession.UserSessionID.EQ(postgres.UUID(userSessionID)))

	out := model.UserSession{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user session %s: %w", userSessionID, err)
	}

	return &out, nil
}

func (h userSessionRepositoryHandler) Delete(userSessionID uuid.UUID) error {
	query := table.UserSession.
		DELETE().
		WHERE(table.UserSession.UserSessionID.EQ(postgres.UUID(userSessionID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete user session %s: %w", userSessionID, err)
	}

	return nil
}
