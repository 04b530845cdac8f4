package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/tipsybean/tipsybean-backend-go/store"
)

type JWTCustomClaims struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.StandardClaims
}

// AuthMiddleware validates the bearer token and checks that a session
// record still exists, so a server-side logout invalidates the token.
// The authenticated email lands in the echo context under "email".
func AuthMiddleware(sessions store.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}

			session, err := sessions.GetSession(c.Request().Context(), claims.Email)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check session"})
			}
			if session == nil || !session.IsAuthenticated {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session expired, please log in again"})
			}

			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// AdminMiddleware accepts only tokens carrying the admin claim.
func AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			if !claims.Admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin access required"})
			}
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

func parseToken(c echo.Context) (*JWTCustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header format")
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	return claims, nil
}

func GenerateToken(email string, admin bool) (string, error) {
	claims := &JWTCustomClaims{
		Email: email,
		Admin: admin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * 72).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
