package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	"papertrade/internal/repository"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

const uniqueViolation = "23505"

type Session struct {
	UserAccountID uuid.UUID
	UserSessionID uuid.UUID
	Token         string
}

// AuthService issues and validates session tokens. Tokens are HS256 JWTs
// carrying the session id; the session row is the source of truth, so
// logout revokes server-side even though the token itself stays
// well-formed until expiry.
type AuthService interface {
	Register(ctx context.Context, username, password, confirmation string) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context, userSessionID uuid.UUID) error
	Authenticate(ctx context.Context, token string) (*Session, error)
}

type authServiceHandler struct {
	UserAccountRepository repository.UserAccountRepository
	UserSessionRepository repository.UserSessionRepository
	JwtSecret             string
	StartingCash          decimal.Decimal
}

func NewAuthService(
	userAccountRepository repository.UserAccountRepository,
	userSessionRepository repository.UserSessionRepository,
	jwtSecret string,
	startingCash decimal.Decimal,
) AuthService {
	return authServiceHandler{
		UserAccountRepository: userAccountRepository,
		UserSessionRepository: userSessionRepository,
		JwtSecret:             jwtSecret,
		StartingCash:          startingCash,
	}
}

func (h authServiceHandler) Register(ctx context.Context, username, password, confirmation string) (*Session, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", domain.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("password is required: %w", domain.ErrInvalidInput)
	}
	if password != confirmation {
		return nil, fmt.Errorf("passwords do not match: %w", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := h.UserAccountRepository.Add(nil, model.UserAccount{
		Username:     username,
		PasswordHash: string(hash),
		Cash:         h.StartingCash,
	})
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, fmt.Errorf("username %s already exists: %w", username, domain.ErrInvalidInput)
	} else if err != nil {
		return nil, err
	}

	return h.newSession(account.UserAccountID)
}

func (h authServiceHandler) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", domain.ErrInvalidInput)
	}

	account, err := h.UserAccountRepository.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password: %w", domain.ErrUnauthenticated)
	}

	return h.newSession(account.UserAccountID)
}

func (h authServiceHandler) Logout(ctx context.Context, userSessionID uuid.UUID) error {
	return h.UserSessionRepository.Delete(userSessionID)
}

func (h authServiceHandler) Authenticate(ctx context.Context, tokenStr string) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("failed to parse session token: %w", domain.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims: %w", domain.ErrUnauthenticated)
	}

	sessionIDStr, _ := claims["sid"].(string)
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return nil, fmt.Errorf("malformed session id in token: %w", domain.ErrUnauthenticated)
	}

	session, err := h.UserSessionRepository.Get(sessionID)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("session revoked: %w", domain.ErrUnauthenticated)
	} else if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		return nil, fmt.Errorf("session expired: %w", domain.ErrUnauthenticated)
	}

	return &Session{
		UserAccountID: session.UserAccountID,
		UserSessionID: session.UserSessionID,
		Token:         tokenStr,
	}, nil
}

func (h authServiceHandler) newSession(userAccountID uuid.UUID) (*Session, error) {
	session, err := h.UserSessionRepository.Add(model.UserSession{
		UserAccountID: userAccountID,
		ExpiresAt:     time.Now().UTC().Add(sessionTTL),
	})
	if err != nil {
		return nil, err
	}

	expiresAt := session.ExpiresAt
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userAccountID.String(),
		"sid": session.UserSessionID.String(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(h.JwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &Session{
		UserAccountID: userAccountID,
		UserSessionID: session.UserSessionID,
		Token:         signed,
	}, nil
}
