package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rei_do_lanche_backend/pkg/utils"
)

const accountIDKey = "accountID"

// AccountID returns the account attached to the request by RequireAccount.
func AccountID(c *gin.Context) string {
	return c.GetString(accountIDKey)
}

// RequireAccount resolves the store account for the request. A Bearer token
// is the normal path; the X-Account-ID header is still accepted for
// terminals migrated before login existed, which trust the account id they
// carried over from their local cache.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header format must be Bearer {token}.", ""))
				return
			}
			claims, err := utils.ValidateToken(parts[1])
			if err != nil {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token.", err.Error()))
				return
			}
			c.Set(accountIDKey, claims.AccountID)
			c.Next()
			return
		}

		if legacy := c.GetHeader("X-Account-ID"); legacy != "" {
			c.Set(accountIDKey, legacy)
			c.Next()
			return
		}

		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing credentials.", ""))
	}
}
