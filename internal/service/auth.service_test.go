package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	mock_repository "papertrade/internal/repository/mocks"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJwtSecret = "test-secret"

func Test_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank username", func(t *testing.T) {
		handler := authServiceHandler{}
		_, err := handler.Register(ctx, "", "pw", "pw")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects blank password", func(t *testing.T) {
		handler := authServiceHandler{}
		_, err := handler.Register(ctx, "alice", "", "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects mismatched confirmation", func(t *testing.T) {
		handler := authServiceHandler{}
		_, err := handler.Register(ctx, "alice", "pw", "other")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		userAccountRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(nil, &pq.Error{Code: uniqueViolation})

		handler := authServiceHandler{
			UserAccountRepository: userAccountRepository,
			JwtSecret:             testJwtSecret,
		}
		_, err := handler.Register(ctx, "alice", "pw", "pw")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("creates the account with starting cash and issues a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		userSessionRepository := mock_repository.NewMockUserSessionRepository(ctrl)

		userAccountID := uuid.New()
		userSessionID := uuid.New()
		startingCash := decimal.RequireFromString("10000")

		userAccountRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, account model.UserAccount) (*model.UserAccount, error) {
				require.Equal(t, "alice", account.Username)
				require.True(t, startingCash.Equal(account.Cash))
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pw")))
				account.UserAccountID = userAccountID
				return &account, nil
			})

		userSessionRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(session model.UserSession) (*model.UserSession, error) {
				session.UserSessionID = userSessionID
				return &session, nil
			})

		handler := authServiceHandler{
			UserAccountRepository: userAccountRepository,
			UserSessionRepository: userSessionRepository,
			JwtSecret:             testJwtSecret,
			StartingCash:          startingCash,
		}

		session, err := handler.Register(ctx, "alice", "pw", "pw")
		require.NoError(t, err)
		require.Equal(t, userAccountID, session.UserAccountID)
		require.Equal(t, userSessionID, session.UserSessionID)
		require.NotEmpty(t, session.Token)
	})
}

func Test_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("rejects blank credentials", func(t *testing.T) {
		handler := authServiceHandler{}
		_, err := handler.Login(ctx, "", "pw")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		userAccountRepository.EXPECT().
			GetByUsername("alice").
			Return(&model.UserAccount{
				UserAccountID: uuid.New(),
				Username:      "alice",
				PasswordHash:  string(hash),
			}, nil)

		handler := authServiceHandler{UserAccountRepository: userAccountRepository}
		_, err := handler.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("issues a session for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
		userSessionRepository := mock_repository.NewMockUserSessionRepository(ctrl)

		userAccountID := uuid.New()
		userAccountRepository.EXPECT().
			GetByUsername("alice").
			Return(&model.UserAccount{
				UserAccountID: userAccountID,
				Username:      "alice",
				PasswordHash:  string(hash),
			}, nil)

		userSessionRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(session model.UserSession) (*model.UserSession, error) {
				session.UserSessionID = uuid.New()
				return &session, nil
			})

		handler := authServiceHandler{
			UserAccountRepository: userAccountRepository,
			UserSessionRepository: userSessionRepository,
			JwtSecret:             testJwtSecret,
		}

		session, err := handler.Login(ctx, "alice", "pw")
		require.NoError(t, err)
		require.Equal(t, userAccountID, session.UserAccountID)
	})
}

func Test_Authenticate(t *testing.T) {
	ctx := context.Background()

	issueToken := func(t *testing.T, handler authServiceHandler, userSessionRepository *mock_repository.MockUserSessionRepository, userAccountID uuid.UUID) (*Session, uuid.UUID) {
		var userSessionID uuid.UUID
		userSessionRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(session model.UserSession) (*model.UserSession, error) {
				userSessionID = uuid.New()
				session.UserSessionID = userSessionID
				return &session, nil
			})
		session, err := handler.newSession(userAccountID)
		require.NoError(t, err)
		return session, userSessionID
	}

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userSessionRepository := mock_repository.NewMockUserSessionRepository(ctrl)
		handler := authServiceHandler{
			UserSessionRepository: userSessionRepository,
			JwtSecret:             testJwtSecret,
		}

		userAccountID := uuid.New()
		issued, userSessionID := issueToken(t, handler, userSessionRepository, userAccountID)

		userSessionRepository.EXPECT().
			Get(userSessionID).
			Return(&model.UserSession{
				UserSessionID: userSessionID,
				UserAccountID: userAccountID,
				ExpiresAt:     time.Now().UTC().Add(time.Hour),
			}, nil)

		session, err := handler.Authenticate(ctx, issued.Token)
		require.NoError(t, err)
		require.Equal(t, userAccountID, session.UserAccountID)
		require.Equal(t, userSessionID, session.UserSessionID)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		handler := authServiceHandler{JwtSecret: testJwtSecret}
		_, err := handler.Authenticate(ctx, "not.a.token")
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userSessionRepository := mock_repository.NewMockUserSessionRepository(ctrl)
		other := authServiceHandler{
			UserSessionRepository: userSessionRepository,
			JwtSecret:             "other-secret",
		}
		issued, _ := issueToken(t, other, userSessionRepository, uuid.New())

		handler := authServiceHandler{JwtSecret: testJwtSecret}
		_, err := handler.Authenticate(ctx, issued.Token)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("rejects revoked sessions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userSessionRepository := mock_repository.NewMockUserSessionRepository(ctrl)
		handler := authServiceHandler{
			UserSessionRepository: userSessionRepository,
			JwtSecret:             testJwtSecret,
		}

		issued, userSessionID := issueToken(t, handler, userSessionRepository, uuid.New())

		userSessionRepository.EXPECT().
			Get(userSessionID).
			Return(nil, qrm.ErrNoRows)

		_, err := handler.Authenticate(ctx, issued.Token)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("rejects expired sessions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userSessionRepository := mock_repository.NewMockUserSessionRepository(ctrl)
		handler := authServiceHandler{
			UserSessionRepository: userSessionRepository,
			JwtSecret:             testJwtSecret,
		}

		userAccountID := uuid.New()
		issued, userSessionID := issueToken(t, handler, userSessionRepository, userAccountID)

		userSessionRepository.EXPECT().
			Get(userSessionID).
			Return(&model.UserSession{
				UserSessionID: userSessionID,
				UserAccountID: userAccountID,
				ExpiresAt:     time.Now().UTC().Add(-time.Minute),
			}, nil)

		_, err := handler.Authenticate(ctx, issued.Token)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
