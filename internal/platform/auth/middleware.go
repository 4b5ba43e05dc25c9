package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	RoleAdmin     = "admin"
	RoleClinician = "clinician"
	RolePatient   = "patient"
)

// DevUserHeader lets local callers pick an identity under DevAuthMiddleware,
// formatted as "id" or "id:role".
const DevUserHeader = "X-Dev-User"

const devUserID = "dev-user"

// Claims is the token payload. Subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

type JWTConfig struct {
	Issuer     string
	SigningKey []byte
}

type identityKey struct{}

type identity struct {
	userID string
	roles  []string
}

// JWTMiddleware requires an HS256 bearer token on every request.
func JWTMiddleware(cfg JWTConfig) echo.MiddlewareFunc {
	parser := jwt.NewParser(parserOptions(cfg)...)
	keyFunc := func(*jwt.Token) (any, error) { return cfg.SigningKey, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			raw, ok := bearerToken(header)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}
			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has no subject")
			}
			setUser(c, claims.Subject, claims.Roles)
			return next(c)
		}
	}
}

func parserOptions(cfg JWTConfig) []jwt.ParserOption {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return opts
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}

// DevAuthMiddleware authenticates every request without a token. The caller is
// an admin unless DevUserHeader names another identity.
func DevAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, role := devUserID, RoleAdmin
			if h := strings.TrimSpace(c.Request().Header.Get(DevUserHeader)); h != "" {
				id, role = h, RolePatient
				if u, r, ok := strings.Cut(h, ":"); ok && u != "" && r != "" {
					id, role = u, r
				}
			}
			setUser(c, id, []string{role})
			return next(c)
		}
	}
}

func setUser(c echo.Context, userID string, roles []string) {
	r := c.Request()
	c.SetRequest(r.WithContext(WithUser(r.Context(), userID, roles)))
}

// WithUser stores the caller identity on ctx.
func WithUser(ctx context.Context, userID string, roles []string) context.Context {
	return context.WithValue(ctx, identityKey{}, identity{userID: userID, roles: roles})
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(identityKey{}).(identity)
	return id.userID
}

func RolesFromContext(ctx context.Context) []string {
	id, _ := ctx.Value(identityKey{}).(identity)
	return id.roles
}
