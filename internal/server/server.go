// Package server exposes the installment quote API over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"installment-calc/internal/metrics"
	"installment-calc/internal/prefs"
	"installment-calc/internal/tracing"
	"installment-calc/pkg/constants"
	"installment-calc/pkg/datetime"
	"installment-calc/pkg/loans"
	"installment-calc/pkg/validation"
)

type handler struct {
	logger         *zap.Logger
	prefs          prefs.Store
	maxBodySize    int64
	version        string
	flatRateTerms  []int
	amortizedTerms []int
}

// Options configures the HTTP handler.
type Options struct {
	Logger         *zap.Logger
	Prefs          prefs.Store
	MaxBodySize    int64
	Version        string
	FlatRateTerms  []int
	AmortizedTerms []int
	RateLimiter    *RateLimiter
}

// NewHandler constructs the HTTP handler that serves the quote API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Prefs
	if store == nil {
		store = prefs.NewMemoryStore()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	flatRateTerms := opts.FlatRateTerms
	if len(flatRateTerms) == 0 {
		flatRateTerms = constants.DefaultFlatRateComparisonTerms()
	}
	amortizedTerms := opts.AmortizedTerms
	if len(amortizedTerms) == 0 {
		amortizedTerms = constants.DefaultAmortizedComparisonTerms()
	}

	h := &handler{
		logger:         logger,
		prefs:          store,
		maxBodySize:    maxBodySize,
		version:        version,
		flatRateTerms:  flatRateTerms,
		amortizedTerms: amortizedTerms,
	}

	mux := http.NewServeMux()
	mux.Handle("/api/quote/flat-rate", h.instrument("/api/quote/flat-rate", http.HandlerFunc(h.handleFlatRate)))
	mux.Handle("/api/quote/amortizing", h.instrument("/api/quote/amortizing", http.HandlerFunc(h.handleAmortized)))
	mux.Handle("/api/preferences/display", h.instrument("/api/preferences/display", http.HandlerFunc(h.handleDisplayPrefs)))
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.Handle("/metrics", promhttp.Handler())

	if opts.RateLimiter != nil {
		return RateLimitMiddleware(opts.RateLimiter, mux)
	}
	return mux
}

type flatRateRequest struct {
	Price              float64 `json:"price"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	AnnualRatePercent  float64 `json:"annualRatePercent"`
	TermYears          int     `json:"termYears"`
	Variant            string  `json:"variant"`
}

type flatRateResponse struct {
	Quote      loans.FlatRateQuote        `json:"quote"`
	Comparison []loans.FlatRateComparison `json:"comparison"`
	Duration   string                     `json:"duration"`
}

type amortizedRequest struct {
	Price              float64 `json:"price"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	AnnualRatePercent  float64 `json:"annualRatePercent"`
	TermYears          int     `json:"termYears"`
	FirstMonthDays     int     `json:"firstMonthDays"`
	StartMonth         string  `json:"startMonth,omitempty"`
}

type amortizedResponse struct {
	Quote      loans.AmortizedQuote        `json:"quote"`
	Comparison []loans.AmortizedComparison `json:"comparison"`
	Duration   string                      `json:"duration"`
}

func (h *handler) handleFlatRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req flatRateRequest
	if !h.decodeBody(w, r, &req, "server.handleFlatRate") {
		return
	}

	variant := loans.VehicleVariant(req.Variant)
	if req.Variant == "" {
		variant = loans.VariantNew
	}
	if err := validation.ValidateVariant(variant); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleFlatRate")
		return
	}

	input := loans.FlatRateInput{
		Price:              req.Price,
		DownPaymentPercent: validation.ClampPercent(req.DownPaymentPercent),
		AnnualRatePercent:  req.AnnualRatePercent,
		TermYears:          req.TermYears,
		Variant:            variant,
	}

	quote := loans.FlatRate(input)
	metrics.QuotesComputed.WithLabelValues("flat-rate").Inc()

	h.logger.Info("flat-rate quote computed",
		zap.String("op", "server.handleFlatRate"),
		zap.Float64("monthly_total", quote.MonthlyTotal),
		zap.Int("months", quote.Months),
	)

	h.writeJSON(w, http.StatusOK, flatRateResponse{
		Quote:      quote,
		Comparison: loans.CompareFlatRate(input, h.flatRateTerms),
		Duration:   time.Since(start).String(),
	})
}

func (h *handler) handleAmortized(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req amortizedRequest
	if !h.decodeBody(w, r, &req, "server.handleAmortized") {
		return
	}

	firstMonthDays := req.FirstMonthDays
	if req.StartMonth != "" {
		days, err := datetime.DaysInMonth(req.StartMonth)
		if err != nil {
			h.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid start month %q: %v", req.StartMonth, err), "server.handleAmortized")
			return
		}
		firstMonthDays = days
	}
	if firstMonthDays == 0 {
		firstMonthDays = constants.DefaultFirstMonthDays
	}
	if err := validation.ValidateFirstMonthDays(firstMonthDays); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAmortized")
		return
	}

	input := loans.AmortizedInput{
		Price:              req.Price,
		DownPaymentPercent: validation.ClampPercent(req.DownPaymentPercent),
		AnnualRatePercent:  req.AnnualRatePercent,
		TermYears:          req.TermYears,
		FirstMonthDays:     firstMonthDays,
	}

	quote := loans.Amortized(input)
	metrics.QuotesComputed.WithLabelValues("amortizing").Inc()

	h.logger.Info("amortizing quote computed",
		zap.String("op", "server.handleAmortized"),
		zap.Float64("monthly_payment", quote.MonthlyPayment),
		zap.Int("months", quote.Months),
	)

	h.writeJSON(w, http.StatusOK, amortizedResponse{
		Quote:      quote,
		Comparison: loans.CompareAmortized(input, h.amortizedTerms),
		Duration:   time.Since(start).String(),
	})
}

type displayPreference struct {
	Theme string `json:"theme"`
}

func (h *handler) handleDisplayPrefs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		theme, err := h.prefs.Theme(r.Context())
		if err != nil {
			h.respondError(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to load display preference: %v", err), "server.handleDisplayPrefs")
			return
		}
		h.writeJSON(w, http.StatusOK, displayPreference{Theme: theme})
	case http.MethodPut:
		var pref displayPreference
		if !h.decodeBody(w, r, &pref, "server.handleDisplayPrefs") {
			return
		}
		if err := validation.ValidateTheme(pref.Theme); err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleDisplayPrefs")
			return
		}
		if err := h.prefs.SetTheme(r.Context(), pref.Theme); err != nil {
			h.respondError(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to store display preference: %v", err), "server.handleDisplayPrefs")
			return
		}
		h.writeJSON(w, http.StatusOK, pref)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeBody decodes a size-limited JSON request body, responding with 400
// on failure. Returns false when the request has already been answered.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request body: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("quote request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// statusRecorder captures the response status for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// instrument records request metrics and wraps the handler in a trace span.
func (h *handler) instrument(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if tracing.Tracer != nil {
			ctx, span := tracing.Tracer.Start(r.Context(), path)
			defer span.End()
			r = r.WithContext(ctx)
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(recorder.status)).Inc()
		metrics.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}
