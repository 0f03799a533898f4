package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/Rohini2302/Sk-enterprises/internal/auth/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// bearerToken pulls the access token from the Authorization header, falling
// back to the access_token cookie set for browser sessions.
func bearerToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func parseAccessToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// AuthMiddleware validates the JWT and seeds the gin context with the
// identity keys every downstream middleware and handler reads. Tokens
// without all three identity claims are rejected outright.
func AuthMiddleware() gin.HandlerFunc {
	identityClaims := []struct {
		claim   string
		message string
	}{
		{"user_id", "User ID not found in token"},
		{"company_id", "Company ID not found in token"},
		{"employee_id", "Employee ID not found in token"},
	}

	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := parseAccessToken(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		for _, ic := range identityClaims {
			value, ok := claims[ic.claim].(string)
			if !ok || value == "" {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", ic.message, nil)
				c.Abort()
				return
			}
			c.Set(ic.claim, value)
		}

		// user_id_validated marks the id as token-derived rather than
		// client-supplied; self-service endpoints trust only this key.
		c.Set("user_id_validated", c.GetString("user_id"))

		role, _ := claims["role"].(string)
		c.Set("role", role)

		c.Next()
	}
}

// RoleMiddleware gates a route on the coarse role claim. Fine-grained
// permission checks go through RBACAuthorize instead.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
		c.Abort()
	}
}
