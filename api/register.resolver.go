package api

import (
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

type sessionResponse struct {
	UserAccountID string `json:"userAccountID"`
	Token         string `json:"token"`
}

func (m ApiHandler) register(c *gin.Context) {
	var requestBody registerRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	session, err := m.AuthService.Register(
		c.Request.Context(),
		requestBody.Username,
		requestBody.Password,
		requestBody.Confirmation,
	)
	if err != nil {
		returnLedgerError(err, c)
		return
	}

	c.JSON(200, sessionResponse{
		UserAccountID: session.UserAccountID.String(),
		Token:         session.Token,
	})
}
