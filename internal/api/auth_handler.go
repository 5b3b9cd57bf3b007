package api

import (
	"net/http"

	"github.com/phrazzld/market-api/internal/api/shared"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/service"
)

// AuthHandler handles registration and sign-in requests.
type AuthHandler struct {
	identity service.IdentityService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identity service.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register handles POST /users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.identity.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Status:   domain.UserStatus(req.Status),
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.identity.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SignInResponse{Token: token})
}
