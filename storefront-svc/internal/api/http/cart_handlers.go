package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const SessionHeader = "X-Cart-Session"

var errInvalidSession = errors.New("invalid cart session")

// sessionID reads the cart session from the request, minting a new one when
// the client has none yet. The id in use is always echoed back.
func sessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	raw := r.Header.Get(SessionHeader)
	if raw == "" {
		id := uuid.NewString()
		w.Header().Set(SessionHeader, id)
		return id, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errInvalidSession
	}
	w.Header().Set(SessionHeader, id.String())
	return id.String(), nil
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, err := h.Carts.Summary(r.Context(), sid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, err := h.Carts.Clear(r.Context(), sid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payload struct {
		ItemID   string `json:"item_id"`
		ItemType string `json:"item_type"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	itemType, err := domain.ParseItemType(payload.ItemType)
	if err != nil {
		writeError(w, err)
		return
	}
	if payload.ItemID == "" {
		http.Error(w, "Missing item_id", http.StatusBadRequest)
		return
	}

	summary, err := h.Carts.AddToCart(r.Context(), sid, itemType, payload.ItemID, payload.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// setCartItemQuantity takes an absolute quantity; zero or less removes the line.
func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity == nil {
		http.Error(w, "Missing quantity", http.StatusBadRequest)
		return
	}

	summary, err := h.Carts.SetQuantity(r.Context(), sid, itemType, mux.Vars(r)["id"], *payload.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) adjustCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	summary, err := h.Carts.AdjustQuantity(r.Context(), sid, itemType, mux.Vars(r)["id"], payload.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := h.Carts.Remove(r.Context(), sid, itemType, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sid := r.Header.Get(SessionHeader)
	if _, err := uuid.Parse(sid); err != nil {
		http.Error(w, errInvalidSession.Error(), http.StatusBadRequest)
		return
	}

	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Checkout.Checkout(r.Context(), sid, req)
	if err != nil {
		writeError(w, err)
		return
	}

	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusCreated, order)
}
