package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email and password are required",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	account, err := h.credentials.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	tokenString, err := h.tokens.Issue(account.ID)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    account.Public(),
		"token":   tokenString,
	})
}
