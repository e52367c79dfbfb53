package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beacon/internal/models/db_models"
	"beacon/pkg/tokencache"
	"beacon/pkg/utils"
)

const (
	ContextAccountKey = "account"
	ContextClaimsKey  = "claims"
)

// AccountResolver loads the acting account for every request so role and
// approval flags are re-checked server-side instead of trusted from the
// client's cached copy.
type AccountResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
}

func JWTAuthMiddleware(jwtMaker *utils.JWTMaker, denylist tokencache.Denylist, accounts AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := jwtMaker.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			utils.RespondError(c, http.StatusUnauthorized, "Token has been revoked")
			c.Abort()
			return
		}

		accountID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		account, err := accounts.FindByID(c.Request.Context(), accountID)
		if err != nil || account == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Account no longer exists")
			c.Abort()
			return
		}

		c.Set(ContextAccountKey, account)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// extractToken reads the bearer header, falling back to a token query
// parameter for the websocket upgrade where headers are awkward.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil || !account.IsAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the authenticated account set by JWTAuthMiddleware,
// or nil outside a protected route.
func CurrentAccount(c *gin.Context) *db_models.Account {
	value, ok := c.Get(ContextAccountKey)
	if !ok {
		return nil
	}
	account, _ := value.(*db_models.Account)
	return account
}

// CurrentClaims returns the token claims set by JWTAuthMiddleware.
func CurrentClaims(c *gin.Context) *utils.Claims {
	value, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*utils.Claims)
	return claims
}
