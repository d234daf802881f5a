package handler

import (
	"net/http"
	"time"

	"github.com/lendq/loan-intake/internal/auth"
	"github.com/lendq/loan-intake/internal/config"
	"github.com/lendq/loan-intake/pkg/apperr"
	"github.com/lendq/loan-intake/pkg/response"
)

type AuthHandler struct {
	tokens         *auth.TokenService
	exposeInternal bool
}

func NewAuthHandler(tokens *auth.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		tokens:         tokens,
		exposeInternal: !cfg.IsProduction(),
	}
}

type TokenRequest struct {
	APIKey string `json:"apiKey"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Token exchanges the configured API key for a bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}
	if req.APIKey == "" {
		response.AppError(w, apperr.Validation(apperr.FieldViolation{Field: "apiKey", Message: "is required"}), h.exposeInternal)
		return
	}

	token, expiresAt, err := h.tokens.Issue(r.Context(), req.APIKey)
	if err != nil {
		response.AppError(w, err, h.exposeInternal)
		return
	}

	response.Success(w, TokenResponse{Token: token, ExpiresAt: expiresAt})
}
