package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/levitica/hr-system/internal/api/metrics"
	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditRecorder
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditRecorder) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        *domain.Account `json:"user"`
}

type logoutResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// Login authenticates with email+password and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	tok, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var statusErr *domain.AccountStatusError
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			h.recordLogin(c, req.Email, domain.AuditOutcomeDenied, "bad credentials")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect email or password"})
		case errors.As(err, &statusErr):
			metrics.LoginsTotal.WithLabelValues("forbidden").Inc()
			h.recordLogin(c, req.Email, domain.AuditOutcomeDenied, string(statusErr.Status))
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": fmt.Sprintf("Account is %s. Please contact administrator.", statusErr.Status),
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("granted").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	h.recordLogin(c, account.Email, domain.AuditOutcomeGranted, "")

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		User:        account,
	})
}

// Me returns the public projection of the authenticated account.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Refresh issues a new token with the same subject and role and a fresh
// expiry. The password is not re-verified.
//
// @Summary      Refresh token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	account, err := principal(c)
	if err != nil {
		return err
	}

	tok, err := h.authService.Refresh(account)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()
	h.record(c, account.Email, domain.AuditActionRefresh, domain.AuditOutcomeGranted, "")

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		User:        account,
	})
}

// Logout acknowledges a logout. Tokens are stateless, so the actual logout
// happens client-side; this endpoint exists for the audit trail.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  logoutResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	account, err := principal(c)
	if err != nil {
		return err
	}

	h.record(c, account.Email, domain.AuditActionLogout, domain.AuditOutcomeGranted, "")

	return c.JSON(http.StatusOK, logoutResponse{
		Message: "Successfully logged out",
		User:    account.Email,
	})
}

func (h *AuthHandler) recordLogin(c echo.Context, actor, outcome, detail string) {
	h.record(c, actor, domain.AuditActionLogin, outcome, detail)
}

func (h *AuthHandler) record(c echo.Context, actor, action, outcome, detail string) {
	if h.audit == nil {
		return
	}
	h.audit.Record(domain.AuthEvent{
		Actor:      actor,
		Action:     action,
		Outcome:    outcome,
		Detail:     detail,
		RemoteIP:   c.RealIP(),
		OccurredAt: time.Now().UTC(),
	})
}
