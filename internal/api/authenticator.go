package api

import (
	"net/http"
	"strings"

	"github.com/phrazzld/market-api/internal/service/auth"
)

// Authenticator resolves the caller of a request from its bearer token.
type Authenticator struct {
	tokens auth.JWTService
}

// NewAuthenticator creates an Authenticator backed by tokens.
func NewAuthenticator(tokens auth.JWTService) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Caller verifies the request's "Authorization: Bearer <token>" header and
// returns the identity it was issued to.
//
// Returns auth.ErrMissingToken when there is no header, auth.ErrInvalidToken
// when it is malformed or fails verification, and auth.ErrExpiredToken when
// the token has expired.
func (a *Authenticator) Caller(r *http.Request) (auth.Caller, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return auth.Caller{}, auth.ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	claims, err := a.tokens.ValidateToken(r.Context(), token)
	if err != nil {
		return auth.Caller{}, err
	}

	return claims.Caller(), nil
}
