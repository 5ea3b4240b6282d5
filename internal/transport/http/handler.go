// Package http exposes the storefront over a JSON API. It is a thin
// shell: request decoding and status mapping live here, every decision
// about stock, activation and pricing stays in the domain.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/store/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/store/queries/stock_report"
	"github.com/light-bringer/storefront-service/internal/app/store/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/pkg/journal"
)

// Handler routes storefront API requests to use cases and queries.
type Handler struct {
	placeOrder   *place_order.Interactor
	listProducts *list_products.Query
	stockReport  *stock_report.Query
	journal      *journal.Journal
	logger       *zap.Logger
}

// NewHandler creates a new storefront HTTP handler.
func NewHandler(
	placeOrder *place_order.Interactor,
	listProducts *list_products.Query,
	stockReport *stock_report.Query,
	jrnl *journal.Journal,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		placeOrder:   placeOrder,
		listProducts: listProducts,
		stockReport:  stockReport,
		journal:      jrnl,
		logger:       logger,
	}
}

// Mux returns the routed handler for the API surface.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products", h.handleListProducts)
	mux.HandleFunc("GET /api/v1/stock", h.handleStockReport)
	mux.HandleFunc("POST /api/v1/orders", h.handlePlaceOrder)
	mux.HandleFunc("GET /api/v1/events", h.handleListEvents)
	return mux
}

// ProductEntry is one catalog entry in the products response.
type ProductEntry struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Stock       int64  `json:"stock"`
	Unlimited   bool   `json:"unlimited,omitempty"`
	MaxPerOrder int64  `json:"max_per_order,omitempty"`
	Active      bool   `json:"active"`
	Promotion   string `json:"promotion,omitempty"`
	Display     string `json:"display"`
}

// ListProductsResponse is the products listing payload.
type ListProductsResponse struct {
	Products []ProductEntry `json:"products"`
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	views := h.listProducts.Execute(r.Context(), activeOnly)
	resp := ListProductsResponse{Products: make([]ProductEntry, 0, len(views))}
	for _, v := range views {
		resp.Products = append(resp.Products, ProductEntry{
			Name:        v.Name,
			Price:       v.Price,
			Stock:       v.Stock,
			Unlimited:   v.Unlimited,
			MaxPerOrder: v.MaxPerOrder,
			Active:      v.Active,
			Promotion:   v.Promotion,
			Display:     v.Display,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// StockReportResponse is the stock summary payload.
type StockReportResponse struct {
	TotalItems int64  `json:"total_items"`
	Summary    string `json:"summary"`
}

func (h *Handler) handleStockReport(w http.ResponseWriter, r *http.Request) {
	report := h.stockReport.Execute(r.Context())
	writeJSON(w, http.StatusOK, StockReportResponse{
		TotalItems: report.TotalItems,
		Summary:    report.Summary,
	})
}

// OrderLine is one requested line item in an order body.
type OrderLine struct {
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
}

// OrderRequest is the order body.
type OrderRequest struct {
	Lines []OrderLine `json:"lines"`
}

// OrderLineReceipt is one committed line in the order response.
type OrderLineReceipt struct {
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	LinePrice string `json:"line_price"`
}

// OrderResponse is the committed order payload.
type OrderResponse struct {
	OrderID  string             `json:"order_id"`
	PlacedAt time.Time          `json:"placed_at"`
	Lines    []OrderLineReceipt `json:"lines"`
	Total    string             `json:"total"`
}

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateOrderRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	appReq := &place_order.Request{Lines: make([]place_order.RequestLine, 0, len(req.Lines))}
	for _, line := range req.Lines {
		appReq.Lines = append(appReq.Lines, place_order.RequestLine{
			ProductName: line.Product,
			Quantity:    line.Quantity,
		})
	}

	receipt, err := h.placeOrder.Execute(r.Context(), appReq)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	resp := OrderResponse{
		OrderID:  receipt.ID,
		PlacedAt: receipt.PlacedAt,
		Lines:    make([]OrderLineReceipt, 0, len(receipt.Lines)),
		Total:    receipt.Total.String(),
	}
	for _, line := range receipt.Lines {
		resp.Lines = append(resp.Lines, OrderLineReceipt{
			Product:   line.ProductName,
			Quantity:  line.Quantity,
			LinePrice: line.LinePrice.String(),
		})
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListEventsResponse is the event journal payload.
type ListEventsResponse struct {
	Events []journal.Entry `json:"events"`
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 100
	if limitStr := query.Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries := h.journal.Entries(query.Get("event_type"), limit)
	writeJSON(w, http.StatusOK, ListEventsResponse{Events: entries})
}

// ErrorResponse is the error payload for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
