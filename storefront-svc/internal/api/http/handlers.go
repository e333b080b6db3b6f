package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Carts    service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
	Settings service.SettingsServiceInterface
}

func NewHandler(
	catalogSvc service.CatalogServiceInterface,
	cartSvc service.CartServiceInterface,
	checkoutSvc service.CheckoutServiceInterface,
	orderSvc service.OrderServiceInterface,
	settingsSvc service.SettingsServiceInterface,
) *Handler {
	return &Handler{
		Catalog:  catalogSvc,
		Carts:    cartSvc,
		Checkout: checkoutSvc,
		Orders:   orderSvc,
		Settings: settingsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")

	r.HandleFunc("/api/catalog/{type}", h.getCatalog).Methods("GET")
	r.HandleFunc("/api/catalog/{type}", h.createCatalogItem).Methods("POST")
	r.HandleFunc("/api/catalog/{type}/{id}", h.getCatalogItem).Methods("GET")
	r.HandleFunc("/api/catalog/{type}/{id}", h.updateCatalogItem).Methods("PUT")
	r.HandleFunc("/api/catalog/{type}/{id}", h.deleteCatalogItem).Methods("DELETE")
	r.HandleFunc("/api/admin/catalog/{type}", h.getAdminCatalog).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{type}/{id}", h.setCartItemQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{type}/{id}", h.adjustCartItemQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{type}/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/settings", h.updateSettings).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[storefront-svc] WARNING: failed to encode response: %v", err)
	}
}

// writeError maps domain and service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidItem),
		errors.Is(err, domain.ErrInvalidItemType),
		errors.Is(err, domain.ErrInvalidSettings),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrMissingContact),
		errors.Is(err, service.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, service.ErrItemUnavailable):
		status = http.StatusConflict
	case errors.Is(err, service.ErrBelowMinimumOrder):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		log.Printf("[storefront-svc] internal error: %v", err)
	}
	http.Error(w, err.Error(), status)
}

func itemTypeVar(r *http.Request) (domain.ItemType, error) {
	return domain.ParseItemType(mux.Vars(r)["type"])
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateCategory(r.Context(), &category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var categoryID *int
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid category", http.StatusBadRequest)
			return
		}
		categoryID = &id
	}

	items, err := h.Catalog.List(r.Context(), itemType, categoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getAdminCatalog(w http.ResponseWriter, r *http.Request) {
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.Catalog.ListAll(r.Context(), itemType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getCatalogItem(w http.ResponseWriter, r *http.Request) {
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := h.Catalog.Get(r.Context(), itemType, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createCatalogItem(w http.ResponseWriter, r *http.Request) {
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var item domain.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = ""
	item.Type = itemType
	if err := h.Catalog.Create(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateCatalogItem(w http.ResponseWriter, r *http.Request) {
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var item domain.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]
	item.Type = itemType
	if err := h.Catalog.Update(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	itemType, err := itemTypeVar(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := h.Catalog.Delete(r.Context(), itemType, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func orderIDVar(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil && id > 0
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDVar(r)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	order, err := h.Orders.Get(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDVar(r)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	status, err := domain.ParseOrderStatus(payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), orderID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDVar(r)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	qrCode, err := h.Orders.GetQRCode(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.OrderSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Settings.Update(r.Context(), settings); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.Settings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
