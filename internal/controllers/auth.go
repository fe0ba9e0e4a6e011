package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ht5play/internal/auth"
	"ht5play/internal/middleware"
)

type AuthController struct {
	provider auth.Provider
	log      *slog.Logger
}

func NewAuthController(p auth.Provider, log *slog.Logger) *AuthController {
	return &AuthController{
		provider: p,
		log:      log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.auth.Login"

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	token, err := c.provider.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, c.log, http.StatusUnauthorized, errorResponse{Error: auth.ErrInvalidCredentials.Error()})
			return
		}
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, loginResponse{Token: token})
}

// Me echoes the identity the middleware resolved from the bearer token.
// The admin UI calls it on load to validate a stored session.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, c.log, http.StatusUnauthorized, errorResponse{Error: auth.ErrInvalidToken.Error()})
		return
	}

	writeJSON(w, c.log, http.StatusOK, identity)
}
