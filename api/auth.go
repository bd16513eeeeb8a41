package api

import (
	"fmt"
	"strings"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userAccountIDKey = "userAccountID"
	userSessionIDKey = "userSessionID"
)

// authMiddleware is the capability check in front of every protected
// route: it validates the bearer token against the session store and
// stashes the caller's identity in the request context.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if header == "" || tokenStr == header {
		returnLedgerError(fmt.Errorf("missing bearer token: %w", domain.ErrUnauthenticated), c)
		return
	}

	session, err := m.AuthService.Authenticate(c.Request.Context(), tokenStr)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.Set(userAccountIDKey, session.UserAccountID.String())
	c.Set(userSessionIDKey, session.UserSessionID.String())
	c.Next()
}

func userAccountIDFromContext(c *gin.Context) (uuid.UUID, error) {
	return uuidFromContext(c, userAccountIDKey)
}

func userSessionIDFromContext(c *gin.Context) (uuid.UUID, error) {
	return uuidFromContext(c, userSessionIDKey)
}

func uuidFromContext(c *gin.Context, key string) (uuid.UUID, error) {
	ginValue, ok := c.Get(key)
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in: %w", domain.ErrUnauthenticated)
	}
	str, ok := ginValue.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted %s", key)
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
