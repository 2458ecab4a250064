package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saadtahsin/portfolio-backend/errs"
)

type authHandler struct {
	responder  Responder
	logger     zerolog.Logger
	secret     *adminSecret
	signingKey []byte
	tokenTTL   time.Duration
}

func newAuthHandler(secret *adminSecret, signingKey []byte, tokenTTL time.Duration) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		secret:     secret,
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
	}
}

// login verifies the admin password and issues a signed, time-limited
// session token. The token replaces the client-trusted flag the admin UI
// used to keep in session storage.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if !h.secret.Verify(payload.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid password"))
			return
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin",
			"jti": uuid.NewString(),
			"iat": now.Unix(),
			"exp": now.Add(h.tokenTTL).Unix(),
		})

		tokenString, err := token.SignedString(h.signingKey)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign session token", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"token": tokenString})
	}
}

// updatePassword rotates the in-process admin secret. A mismatched current
// password returns 401 and leaves the secret unchanged. The rotation is not
// durable; a restart restores the configured password.
func (h authHandler) updatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.NewPassword == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("newPassword"))
			return
		}

		rotated, err := h.secret.Rotate(payload.CurrentPassword, payload.NewPassword)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to update password", err))
			return
		}
		if !rotated {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Current password is incorrect"))
			return
		}

		h.logger.Info().Msg("Admin password rotated")
		h.responder.WriteSuccess(w, map[string]any{"message": "Password updated successfully"})
	}
}
