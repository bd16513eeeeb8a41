package api

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db            *sql.DB
	AuthService   service.AuthService
	LedgerService service.LedgerService
	QuoteService  service.QuoteService
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "ok"})
	})
	router.POST("/register", m.register)
	router.POST("/login", m.login)

	authed := router.Group("/", m.authMiddleware)
	authed.GET("/", m.portfolio)
	authed.POST("/buy", m.buy)
	authed.POST("/sell", m.sell)
	authed.POST("/add_cash", m.addCash)
	authed.GET("/history", m.history)
	authed.POST("/quote", m.quote)
	authed.POST("/logout", m.logout)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnLedgerError translates the ledger taxonomy into a user-visible
// 4xx response; anything unclassified is an internal fault.
func returnLedgerError(err error, c *gin.Context) {
	taxonomy := map[string]error{
		"InvalidInput":         domain.ErrInvalidInput,
		"UnknownSymbol":        domain.ErrUnknownSymbol,
		"LookupFailed":         domain.ErrLookupFailed,
		"InsufficientFunds":    domain.ErrInsufficientFunds,
		"InsufficientHoldings": domain.ErrInsufficientHoldings,
	}
	if errors.Is(err, domain.ErrUnauthenticated) {
		c.AbortWithStatusJSON(401, gin.H{"error": err.Error(), "code": "Unauthenticated"})
		return
	}
	for code, sentinel := range taxonomy {
		if errors.Is(err, sentinel) {
			c.AbortWithStatusJSON(400, gin.H{"error": err.Error(), "code": code})
			return
		}
	}
	zap.S().Errorw("request failed", "route", c.Request.URL.Path, "err", err)
	returnErrorJson(err, c)
}

func logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()
	zap.S().Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
