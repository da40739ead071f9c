package api

import (
	"strings"

	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/labstack/echo/v4"
)

const (
	ctxUID    = "uid"
	ctxClaims = "claims"
)

func bearer(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return "", false
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	return token, true
}

func (a *API) authenticate(c echo.Context, token string) error {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return err
	}
	c.Set(ctxUID, claims.Subject)
	c.Set(ctxClaims, claims)
	return nil
}

// requireAuth пропускает только запросы с действующим Bearer-токеном.
func (a *API) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearer(c)
		if !ok {
			return a.fail(c, users.ErrNotSignedIn)
		}
		if err := a.authenticate(c, token); err != nil {
			return a.fail(c, err)
		}
		return next(c)
	}
}

// optionalAuth: без заголовка запрос идёт как гостевой, с неверным токеном — 401.
func (a *API) optionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearer(c); ok {
			if err := a.authenticate(c, token); err != nil {
				return a.fail(c, err)
			}
		}
		return next(c)
	}
}

func uidOf(c echo.Context) string {
	uid, _ := c.Get(ctxUID).(string)
	return uid
}

func claimsOf(c echo.Context) *users.Claims {
	cl, _ := c.Get(ctxClaims).(*users.Claims)
	return cl
}
