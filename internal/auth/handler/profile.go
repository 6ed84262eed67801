package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivam-rawat-4927/auth-service/internal/middleware"
)

// Profile serves the public projection of the authenticated account. The
// account can be gone even though the token is still valid.
func (h *Handler) Profile(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	account, err := h.accounts.FindByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Profile failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account.Public()})
}
