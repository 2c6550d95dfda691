package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/levitica/hr-system/internal/api/metrics"
	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
	"github.com/levitica/hr-system/internal/pkg/token"
)

// principalKey is the echo context key holding the resolved account.
const principalKey = "principal"

// credentialsMessage is the single message for every unauthenticated
// rejection. Missing header, bad signature, expiry, and a subject that no
// longer resolves must all look identical to the caller; only the internal
// log records the real cause.
const credentialsMessage = "could not validate credentials"

// Auth is the authorization gate applied to every protected route. Per
// request it extracts the bearer token, decodes it, re-fetches the account
// by the token's subject, and checks the live status. Nothing is cached
// across requests, so a status change takes effect on the very next call.
func Auth(codec *token.Codec, accounts ports.AccountRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("token rejected")
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}

			account, err := accounts.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					// Token outlived its account.
					log.Debug().Str("subject", claims.Subject).Msg("token subject no longer resolves")
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
				}
				return err
			}

			if account.Status != domain.StatusActive {
				metrics.AuthRejectionsTotal.WithLabelValues("status").Inc()
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("Account is %s. Contact administrator.", account.Status))
			}

			c.Set(principalKey, account)
			return next(c)
		}
	}
}

// Principal returns the account resolved by Auth for this request.
func Principal(c echo.Context) (*domain.Account, bool) {
	account, ok := c.Get(principalKey).(*domain.Account)
	return account, ok
}
