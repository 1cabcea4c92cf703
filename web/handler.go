package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"legrazie-orders/models"
	"legrazie-orders/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// OrderNotifier pushes a new-order card to the restaurant's admin channel.
// Best effort: failures are logged and never surface to the client.
type OrderNotifier interface {
	NotifyNewOrder(orderID int64, in models.CreateOrderInput, at time.Time) error
}

type Handler struct {
	store    services.OrderStore
	catalog  *services.Catalog
	notifier OrderNotifier
	log      *slog.Logger
	validate *validator.Validate
	waNumber string
}

func NewHandler(store services.OrderStore, catalog *services.Catalog, notifier OrderNotifier, log *slog.Logger, waNumber string) *Handler {
	return &Handler{
		store:    store,
		catalog:  catalog,
		notifier: notifier,
		log:      log,
		validate: validator.New(),
		waNumber: waNumber,
	}
}

func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logging)

	r.HandleFunc("/api/orders", h.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", h.ListOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/submit", h.SubmitOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/menu", h.GetMenu).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return r
}

// createOrderRequest mirrors the page's submission payload. deliveryTime
// arrives as the selected option string ("30".."120").
type createOrderRequest struct {
	OrderType       string             `json:"orderType" validate:"required,oneof=table delivery"`
	TableNumber     *int               `json:"tableNumber"`
	DeliveryAddress *string            `json:"deliveryAddress"`
	DeliveryNumber  *string            `json:"deliveryNumber"`
	DeliveryPhone   *string            `json:"deliveryPhone"`
	DeliveryTime    *string            `json:"deliveryTime"`
	Items           []models.OrderItem `json:"items" validate:"required,min=1"`
	TotalPrice      float64            `json:"totalPrice" validate:"required,gt=0"`
}

func (r *createOrderRequest) toInput() (models.CreateOrderInput, error) {
	in := models.CreateOrderInput{
		OrderType:       r.OrderType,
		TableNumber:     r.TableNumber,
		DeliveryAddress: r.DeliveryAddress,
		DeliveryNumber:  r.DeliveryNumber,
		DeliveryPhone:   r.DeliveryPhone,
		Items:           r.Items,
		TotalPrice:      r.TotalPrice,
	}
	if r.DeliveryTime != nil && *r.DeliveryTime != "" {
		minutes, err := strconv.Atoi(*r.DeliveryTime)
		if err != nil {
			return in, services.ValidationError{Field: "delivery_time", Message: "delivery time must be a number of minutes"}
		}
		in.DeliveryTime = &minutes
	}
	return in, nil
}

func (h *Handler) decodeOrderRequest(w http.ResponseWriter, r *http.Request) (models.CreateOrderInput, bool) {
	var req createOrderRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return models.CreateOrderInput{}, false
	}

	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Missing required fields")
		return models.CreateOrderInput{}, false
	}

	in, err := req.toInput()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return models.CreateOrderInput{}, false
	}

	if err := services.ValidateCreateOrder(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return models.CreateOrderInput{}, false
	}
	return in, true
}

// CreateOrder handles POST /api/orders: the store's create operation.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeOrderRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	id, err := h.store.CreateOrder(ctx, in)
	if err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			h.writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.log.Error("order creation failed", "error", err.Error())
		h.writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	h.notify(id, in)

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"orderId": id,
		"message": services.ConfirmationMessage(in),
	})
}

// SubmitOrder handles POST /api/orders/submit: the full submission flow.
// Unlike CreateOrder, a store failure does not fail the request; the order
// falls back to a local id and the response says so.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeOrderRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	sub, err := services.SubmitOrder(ctx, h.store, h.log, in)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if sub.Saved {
		h.notify(sub.OrderID, sub.Order)
	}

	text := services.FormatOrderMessage(sub.OrderID, sub.Order, sub.SubmittedAt)
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"orderId":     sub.OrderID,
		"saved":       sub.Saved,
		"message":     sub.Message,
		"whatsappUrl": services.WhatsAppLink(h.waNumber, text),
	})
}

// ListOrders handles GET /api/orders: the latest 50, newest first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.store.ListRecentOrders(ctx)
	if err != nil {
		h.log.Error("order listing failed", "error", err.Error())
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// GetMenu handles GET /api/menu from the startup catalog.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": models.MenuCategories,
		"items":      h.catalog.Items(),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) notify(orderID int64, in models.CreateOrderInput) {
	if h.notifier == nil {
		return
	}
	go func() {
		if err := h.notifier.NotifyNewOrder(orderID, in, time.Now()); err != nil {
			h.log.Warn("admin notification failed", "order_id", orderID, "error", err.Error())
		}
	}()
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("response encoding failed", "error", err.Error())
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{"error": message})
}

// logging wraps every request with a request id and timing log.
func (h *Handler) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.log.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
