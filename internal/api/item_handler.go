package api

import (
	"net/http"

	"github.com/phrazzld/market-api/internal/api/shared"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/service"
)

// ItemHandler handles item listing requests.
type ItemHandler struct {
	items service.ItemService
	authn *Authenticator
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items service.ItemService, authn *Authenticator) *ItemHandler {
	return &ItemHandler{items: items, authn: authn}
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.items.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authn.Caller(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.items.Create(r.Context(), domain.CreateItemInput{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
	}, caller.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// MarkSoldOut handles PUT /items/{id}. Any signed-in user may mark any item
// sold out.
func (h *ItemHandler) MarkSoldOut(w http.ResponseWriter, r *http.Request) {
	if _, err := h.authn.Caller(r); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.items.UpdateStatus(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}. Only the owner can delete; for anyone
// else the item is reported as not found.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authn.Caller(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.items.Delete(r.Context(), id, caller.UserID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusOK)
}
