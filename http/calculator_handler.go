package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"calc-suite/domain"
	"calc-suite/service"
)

const defaultMaxBodyBytes = 1 << 20

type CalculatorHandler struct {
	service      *service.CalculatorService
	logger       *zap.Logger
	maxBodyBytes int64
}

func NewCalculatorHandler(service *service.CalculatorService, logger *zap.Logger, maxBodyBytes int64) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &CalculatorHandler{service: service, logger: logger, maxBodyBytes: maxBodyBytes}
}

// calculate adapts one service method into a POST JSON endpoint.
func calculate[I any, R any](h *CalculatorHandler, fn func(context.Context, I) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		contentType := r.Header.Get("Content-Type")
		if contentType != "" && !strings.Contains(contentType, "application/json") {
			writeError(w, h.logger, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}

		var input I
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
		if err := dec.Decode(&input); err != nil {
			h.logger.Debug("decode request body", zap.String("path", r.URL.Path), zap.Error(err))
			writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
			return
		}

		writeJSON(w, h.logger, http.StatusOK, fn(r.Context(), input))
	}
}

func (h *CalculatorHandler) Mortgage() http.HandlerFunc {
	return calculate(h, h.service.Mortgage)
}

func (h *CalculatorHandler) Antler() http.HandlerFunc {
	return calculate(h, h.service.Antler)
}

func (h *CalculatorHandler) StockOption() http.HandlerFunc {
	return calculate(h, h.service.StockOption)
}

func (h *CalculatorHandler) CRS() http.HandlerFunc {
	return calculate(h, h.service.CRS)
}

func (h *CalculatorHandler) FSWP() http.HandlerFunc {
	return calculate(h, h.service.FSWP)
}

func (h *CalculatorHandler) HELOC() http.HandlerFunc {
	return calculate(h, h.service.HELOC)
}

func (h *CalculatorHandler) Sonnet() http.HandlerFunc {
	return calculate(h, h.service.Sonnet)
}

func (h *CalculatorHandler) AnalyzeSonnet() http.HandlerFunc {
	return calculate(h, h.service.AnalyzeSonnet)
}

func (h *CalculatorHandler) Supplement() http.HandlerFunc {
	return calculate(h, h.service.Supplement)
}

type historyResponse struct {
	Tool         domain.Tool          `json:"tool"`
	Calculations []domain.Calculation `json:"calculations"`
}

// History serves GET /api/v1/history?tool=<id>&limit=<n>.
func (h *CalculatorHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tool := domain.Tool(r.URL.Query().Get("tool"))
	if !tool.Valid() {
		writeError(w, h.logger, http.StatusBadRequest, "unknown tool")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, h.logger, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	calcs, err := h.service.History(r.Context(), tool, limit)
	if err != nil {
		h.logger.Error("load history", zap.String("tool", string(tool)), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "history unavailable")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, historyResponse{Tool: tool, Calculations: calcs})
}

// Tools lists the calculators served.
func (h *CalculatorHandler) Tools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string][]domain.Tool{"tools": domain.Tools()})
}

func (h *CalculatorHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
