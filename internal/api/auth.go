package api

import (
	"net/http"
	"time"

	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	User      *users.User `json:"user"`
}

func (a *API) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	u, err := a.users.SignUp(c.Request().Context(), req.Email, req.Password, req.Confirm)
	if err != nil {
		return a.fail(c, err)
	}
	return a.respondWithToken(c, http.StatusCreated, u)
}

func (a *API) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	u, err := a.users.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return a.fail(c, err)
	}
	return a.respondWithToken(c, http.StatusOK, u)
}

func (a *API) handleLogout(c echo.Context) error {
	if err := a.tokens.Revoke(claimsOf(c)); err != nil {
		return a.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *API) respondWithToken(c echo.Context, status int, u *users.User) error {
	token, exp, err := a.tokens.Issue(*u)
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(status, authResponse{
		Token:     token,
		ExpiresAt: exp.UTC().Format(time.RFC3339),
		User:      u,
	})
}
