package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/smartlink-edu/campus-payments/utils"
)

// UserIDKey is the context key carrying the authenticated user id.
const UserIDKey = "user_id"

// OptionalAuth extracts the caller identity from a Bearer JWT when one is
// presented. Requests without a token (or with an invalid one) proceed
// anonymously; the relay then tags payment records with a generated id the
// same way the legacy edge function did.
//
// TODO: make this mandatory once the dashboard issues real session tokens.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || jwtSecret == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.LogDebug("Ignoring invalid bearer token: %v", err)
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			c.Set(UserIDKey, userID)
		} else if sub, ok := claims["sub"].(string); ok && sub != "" {
			c.Set(UserIDKey, sub)
		}

		c.Next()
	}
}
