package api

import (
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (m ApiHandler) login(c *gin.Context) {
	var requestBody loginRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	session, err := m.AuthService.Login(c.Request.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, sessionResponse{
		UserAccountID: session.UserAccountID.String(),
		Token:         session.Token,
	})
}
