package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

const principalContextKey = "caller_principal"

// Auth validates the Bearer JWT and resolves the caller's principal from the
// token subject. Every authenticated route reads the caller through
// callerPrincipal, so a request can never act on behalf of another account.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, err := kernel.NewPrincipal(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token subject is not a valid principal")
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// callerPrincipal returns the authenticated principal stored by Auth.
func callerPrincipal(c echo.Context) (kernel.Principal, error) {
	principal, ok := c.Get(principalContextKey).(kernel.Principal)
	if !ok {
		return kernel.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "caller is not authenticated")
	}
	return principal, nil
}
