package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/services"
)

const defaultPriceWindowDays = 30

type StockHandler struct {
	ingestion services.IngestionService
	stocks    services.StockService
	logger    *zap.Logger
	// background runs fire-and-forget jobs; tests swap it for a synchronous call.
	background func(func())
}

func NewStockHandler(ingestion services.IngestionService, stocks services.StockService, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{
		ingestion:  ingestion,
		stocks:     stocks,
		logger:     logger,
		background: func(job func()) { go job() },
	}
}

// @Summary Populate one ticker
// @Description Fetch the recent daily bars of a ticker from the market-data provider and store them
// @Tags stocks
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Success 200 {object} models.Stock
// @Failure 400 {string} string "Bad request"
// @Failure 502 {string} string "Provider error"
// @Router /stocks/populate/{ticker} [post]
func (h *StockHandler) HandlePopulate(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	stock, err := h.ingestion.IngestTicker(r.Context(), ticker)
	if err != nil {
		if apperrors.IsProvider(err) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, "Failed to populate "+ticker+": "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

// @Summary Populate the default ticker universe
// @Description Starts a background ingestion of the large-cap ticker list and returns immediately
// @Tags stocks
// @Produce json
// @Success 202 {object} map[string]string
// @Router /stocks/populate-fortune500 [post]
func (h *StockHandler) HandlePopulateDefault(w http.ResponseWriter, r *http.Request) {
	h.background(func() {
		bgCtx := context.Background()
		summary := models.SummarizeOutcomes(h.ingestion.IngestDefault(bgCtx))
		for _, o := range summary.Outcomes {
			if !o.Succeeded() {
				h.logger.Warn("default universe ticker failed", zap.String("ticker", o.Ticker), zap.String("error", o.Error))
			}
		}
		h.logger.Info("default universe population finished",
			zap.String("status", summary.Status),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed))
	})

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Fortune 500 stock data population started in background",
		"status":  "processing",
	})
}

// @Summary Populate a list of tickers
// @Description Ingests the given tickers in order and reports one outcome per ticker
// @Tags stocks
// @Accept json
// @Produce json
// @Param request body models.IngestBatchRequest true "Tickers"
// @Success 200 {object} models.IngestBatchResponse
// @Failure 400 {string} string "Bad request"
// @Router /stocks/populate [post]
func (h *StockHandler) HandlePopulateBatch(w http.ResponseWriter, r *http.Request) {
	var req models.IngestBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Tickers) == 0 {
		http.Error(w, "tickers is required", http.StatusBadRequest)
		return
	}

	outcomes := h.ingestion.IngestBatch(r.Context(), req.Tickers)
	writeJSON(w, http.StatusOK, models.SummarizeOutcomes(outcomes))
}

// @Summary Get a stock
// @Tags stocks
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Success 200 {object} models.Stock
// @Failure 404 {string} string "Not found"
// @Router /stocks/{ticker} [get]
func (h *StockHandler) HandleGetStock(w http.ResponseWriter, r *http.Request) {
	ticker := models.NormalizeTicker(mux.Vars(r)["ticker"])

	stock, err := h.stocks.GetStock(r.Context(), ticker)
	if err != nil {
		if apperrors.IsNotFound(err) {
			http.Error(w, fmt.Sprintf("Stock %s not found. Use /stocks/populate/%s to add it.", ticker, ticker), http.StatusNotFound)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

// @Summary Get stored daily prices
// @Tags stocks
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param start_date query string false "Start date (YYYY-MM-DD), defaults to 30 days before end_date"
// @Param end_date query string false "End date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} models.PriceBarResponse
// @Failure 400 {string} string "Bad request"
// @Router /stocks/{ticker}/prices [get]
func (h *StockHandler) HandlePrices(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	end, ok, err := parseDateParam(r, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		end = models.TruncateToDate(time.Now())
	}
	start, ok, err := parseDateParam(r, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		start = end.AddDate(0, 0, -defaultPriceWindowDays)
	}

	bars, err := h.stocks.GetPrices(r.Context(), ticker, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]models.PriceBarResponse, 0, len(bars))
	for _, b := range bars {
		resp = append(resp, b.ToResponse())
	}
	writeJSON(w, http.StatusOK, resp)
}
