package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"gourmet-burgers/order-svc/internal/domain"
	"gourmet-burgers/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurant service.RestaurantServiceInterface
}

func NewHandler(restaurant service.RestaurantServiceInterface) *Handler {
	return &Handler{Restaurant: restaurant}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/inventory", h.getInventory).Methods("GET")
	r.HandleFunc("/api/inventory", h.registerIngredient).Methods("POST")
	r.HandleFunc("/api/inventory", h.adjustStock).Methods("PATCH")
	r.HandleFunc("/api/inventory/availability", h.getAvailability).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.cancelOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/burgers", h.addBurger).Methods("POST")
	r.HandleFunc("/api/orders/{id}/wraps", h.addWrap).Methods("POST")
	r.HandleFunc("/api/orders/{id}/sides", h.addSide).Methods("POST")
	r.HandleFunc("/api/orders/{id}/drinks", h.addDrink).Methods("POST")
	r.HandleFunc("/api/orders/{id}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/prepared", h.markPrepared).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/staff/orders", h.getActiveOrdersReport).Methods("GET")
}

type mainRequest struct {
	Ingredients map[string]int `json:"ingredients"`
}

type statusResponse struct {
	OrderID int    `json:"order_id"`
	Status  string `json:"status"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Restaurant.Ingredients())
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Restaurant.Availability())
}

func (h *Handler) registerIngredient(w http.ResponseWriter, r *http.Request) {
	var input service.IngredientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurant.RegisterIngredient(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, input)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var quantities map[string]int
	if err := json.NewDecoder(r.Body).Decode(&quantities); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurant.AdjustStock(r.Context(), quantities); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Restaurant.Ingredients())
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Restaurant.CreateOrder(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Restaurant.ListOrders(r.URL.Query().Get("state"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	order, err := h.Restaurant.GetOrder(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	if err := h.Restaurant.CancelOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addBurger(w http.ResponseWriter, r *http.Request) {
	h.addMain(w, r, h.Restaurant.AddBurger)
}

func (h *Handler) addWrap(w http.ResponseWriter, r *http.Request) {
	h.addMain(w, r, h.Restaurant.AddWrap)
}

type addMainFunc func(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error)

func (h *Handler) addMain(w http.ResponseWriter, r *http.Request, add addMainFunc) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	// An empty body asks for the standard recipe.
	var req mainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := add(r.Context(), id, req.Ingredients)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) addSide(w http.ResponseWriter, r *http.Request) {
	h.addSideOrDrink(w, r, h.Restaurant.AddSide)
}

func (h *Handler) addDrink(w http.ResponseWriter, r *http.Request) {
	h.addSideOrDrink(w, r, h.Restaurant.AddDrink)
}

type addItemFunc func(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error)

func (h *Handler) addSideOrDrink(w http.ResponseWriter, r *http.Request, add addItemFunc) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var item domain.SideOrDrink
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.ServingSize == "" {
		item.ServingSize = domain.RegularSize
	}
	order, err := add(r.Context(), id, item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	order, err := h.Restaurant.Checkout(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) markPrepared(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	order, err := h.Restaurant.MarkPrepared(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	status, err := h.Restaurant.OrderStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{OrderID: id, Status: status})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	qrCode, err := h.Restaurant.ReceiptQRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getActiveOrdersReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Restaurant.ActiveOrdersReport()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}

func orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, domain.MsgIncorrectOrderID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsUnknownOrder(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case domain.IsSystemError(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case domain.IsInventoryError(err), domain.IsOrderError(err),
		errors.Is(err, service.ErrUnknownState), errors.Is(err, service.ErrInvalidPrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrPaymentGateway):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		log.Printf("Unhandled error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
