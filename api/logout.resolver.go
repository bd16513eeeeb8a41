package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) logout(c *gin.Context) {
	userSessionID, err := userSessionIDFromContext(c)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	err = m.AuthService.Logout(c.Request.Context(), userSessionID)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, map[string]bool{"success": true})
}
