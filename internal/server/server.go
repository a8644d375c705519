// Package server exposes the deal-economics engine over a JSON HTTP API.
package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/brokerlane/dealengine/internal/cache"
	"github.com/brokerlane/dealengine/internal/config"
	"github.com/brokerlane/dealengine/internal/engine"
	"github.com/brokerlane/dealengine/pkg/constants"
	"github.com/brokerlane/dealengine/pkg/deal"
	"github.com/brokerlane/dealengine/pkg/industry"
	"github.com/brokerlane/dealengine/pkg/letter"
	"github.com/brokerlane/dealengine/pkg/multiples"
	"github.com/brokerlane/dealengine/pkg/projection"
	"github.com/brokerlane/dealengine/pkg/valuation"
)

// letterCacheTTL bounds how long a generated letter is reused for identical
// strategy figures.
const letterCacheTTL = 24 * time.Hour

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	store         cache.Store
	letters       *letter.Generator
}

// Options configures the handler's collaborators. Nil fields get safe
// defaults.
type Options struct {
	Logger        *zap.Logger
	MaxUploadSize int64
	Version       string
	Store         cache.Store
	Letters       *letter.Generator
}

// NewHandler constructs the HTTP handler that serves the deal analysis API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	store := opts.Store
	if store == nil {
		store = cache.NewMemoryStore()
	}

	letters := opts.Letters
	if letters == nil {
		letters = letter.NewGenerator("", "", logger)
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       version,
		store:         store,
		letters:       letters,
	}

	mux := http.NewServeMux()

	// Full analysis from an uploaded YAML configuration
	mux.HandleFunc("/api/analyze", h.handleAnalyze)

	// Direct JSON calculation endpoints
	mux.HandleFunc("/api/valuation", h.handleValuation)
	mux.HandleFunc("/api/projection", h.handleProjection)
	mux.HandleFunc("/api/deal", h.handleDeal)

	// Offer letter generation
	mux.HandleFunc("/api/letter", h.handleLetter)

	// Config serialization endpoint for editor downloads
	mux.HandleFunc("/api/export", h.handleConfigExport)

	// Service metadata
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/api/healthz", h.handleHealth)

	return mux
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	configBytes, err := h.readConfigUpload(w, r)
	if err != nil {
		return // readConfigUpload has already responded
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAnalyze")
		return
	}

	analysis, err := engine.Run(h.logger, cfg)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to compute analysis: %v", err), "server.handleAnalyze")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("analysis computed",
		zap.String("op", "server.handleAnalyze"),
		zap.String("structure", analysis.Strategy.Structure),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"analysis": analysis,
		"duration": elapsed.String(),
	})
}

// readConfigUpload accepts either a multipart "file" field or a raw YAML/JSON
// request body.
func (h *handler) readConfigUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleAnalyze")
				return nil, err
			}
			h.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("failed to parse upload: %v", err), "server.handleAnalyze")
			return nil, err
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handleAnalyze")
			return nil, err
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				h.logger.Warn("failed to close uploaded file",
					zap.String("op", "server.handleAnalyze"),
					zap.Error(closeErr),
				)
			}
		}()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			h.respondError(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to read configuration: %v", err), "server.handleAnalyze")
			return nil, err
		}
		return buf.Bytes(), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleAnalyze")
			return nil, err
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to read request body: %v", err), "server.handleAnalyze")
		return nil, err
	}
	return data, nil
}

type valuationRequest struct {
	Basis          string              `json:"basis"` // sde, ebitda, revenue
	Amount         float64             `json:"amount"`
	Industry       string              `json:"industry,omitempty"`
	Multiples      *industry.Multiples `json:"multiples,omitempty"`
	WorkingCapital float64             `json:"workingCapital"`
	Adjustments    *multiples.Inputs   `json:"adjustments,omitempty"`
}

type valuationResponse struct {
	IndustryKey        string              `json:"industryKey,omitempty"`
	Adjustments        *multiples.Result   `json:"adjustments,omitempty"`
	EffectiveMultiples *industry.Multiples `json:"effectiveMultiples,omitempty"`
	Band               valuation.Band      `json:"band"`
}

func (h *handler) handleValuation(w http.ResponseWriter, r *http.Request) {
	var req valuationRequest
	if !h.decodeJSON(w, r, &req, "server.handleValuation") {
		return
	}

	resp := valuationResponse{}

	m := industry.Multiples{}
	switch {
	case req.Multiples != nil:
		m = *req.Multiples
	case req.Industry != "":
		resp.IndustryKey = industry.Normalize(req.Industry)
		m = industry.MultiplesFor(req.Industry)
	}

	if req.Adjustments != nil && m != (industry.Multiples{}) {
		result := multiples.Compute(*req.Adjustments)
		m = multiples.Apply(m, result.Total)
		resp.Adjustments = &result
	}
	if m != (industry.Multiples{}) {
		resp.EffectiveMultiples = &m
	}

	switch strings.ToLower(strings.TrimSpace(req.Basis)) {
	case "", "sde":
		resp.Band = valuation.SDEMultiple(valuation.SDEInput{
			SDE: req.Amount, Multiples: m, WorkingCapital: req.WorkingCapital})
	case "ebitda":
		resp.Band = valuation.EBITDAMultiple(valuation.EBITDAInput{
			EBITDA: req.Amount, Multiples: m, WorkingCapital: req.WorkingCapital})
	case "revenue":
		resp.Band = valuation.RevenueMultiple(valuation.RevenueInput{
			Revenue: req.Amount, Multiples: m, WorkingCapital: req.WorkingCapital})
	default:
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown basis %q", req.Basis), "server.handleValuation")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type projectionRequest struct {
	BaseRevenue  float64  `json:"baseRevenue"`
	BaseSDE      float64  `json:"baseSde"`
	BaseExpenses *float64 `json:"baseExpenses,omitempty"`
	GrowthRate   float64  `json:"growthRate"`
	Years        int      `json:"years"`
	Multiple     float64  `json:"multiple"`
	AskingPrice  *float64 `json:"askingPrice,omitempty"`
}

type projectionResponse struct {
	Rows              []projection.Row `json:"rows"`
	YearsToJustifyAsk *int             `json:"yearsToJustifyAsk"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	var req projectionRequest
	if !h.decodeJSON(w, r, &req, "server.handleProjection") {
		return
	}

	in := projection.Input{
		BaseRevenue:  req.BaseRevenue,
		BaseSDE:      req.BaseSDE,
		BaseExpenses: req.BaseExpenses,
		GrowthRate:   req.GrowthRate,
		Years:        req.Years,
		Multiple:     req.Multiple,
	}

	resp := projectionResponse{Rows: projection.Project(in)}
	if req.AskingPrice != nil {
		resp.YearsToJustifyAsk = projection.YearsToJustifyPrice(in, *req.AskingPrice)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type dealRequest struct {
	Seller deal.SellerTerms  `json:"seller"`
	Buyer  deal.BuyerProfile `json:"buyer"`
	Policy deal.Policy       `json:"policy,omitempty"`
}

type dealResponse struct {
	Strategy       deal.Strategy `json:"strategy"`
	MonthlyPayment *float64      `json:"monthlyPayment"`
}

func (h *handler) handleDeal(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if !h.decodeJSON(w, r, &req, "server.handleDeal") {
		return
	}

	strategy := deal.Resolve(req.Seller, req.Buyer, req.Policy)

	resp := dealResponse{Strategy: strategy}
	if strategy.Structure == deal.StructureStandardAmortizing &&
		strategy.Recommended.NotePrincipal != nil && strategy.Recommended.TermYears != nil {
		resp.MonthlyPayment = deal.MonthlyPayment(
			*strategy.Recommended.NotePrincipal,
			strategy.Recommended.InterestPct,
			int(*strategy.Recommended.TermYears*12),
		)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type letterRequest struct {
	BusinessName string        `json:"businessName"`
	BuyerName    string        `json:"buyerName"`
	Strategy     deal.Strategy `json:"strategy"`
}

type letterResponse struct {
	Letter string `json:"letter"`
	Cached bool   `json:"cached"`
}

func (h *handler) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterRequest
	if !h.decodeJSON(w, r, &req, "server.handleLetter") {
		return
	}

	key, err := letterCacheKey(req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to key letter request: %v", err), "server.handleLetter")
		return
	}

	if cached, ok := h.store.Get(r.Context(), key); ok {
		h.writeJSON(w, http.StatusOK, letterResponse{Letter: cached, Cached: true})
		return
	}

	text := h.letters.Generate(r.Context(), letter.Request{
		BusinessName: req.BusinessName,
		BuyerName:    req.BuyerName,
		Strategy:     req.Strategy,
	})

	if err := h.store.Set(r.Context(), key, text, letterCacheTTL); err != nil {
		h.logger.Warn("failed to cache letter",
			zap.String("op", "server.handleLetter"),
			zap.Error(err),
		)
	}

	h.writeJSON(w, http.StatusOK, letterResponse{Letter: text})
}

func letterCacheKey(req letterRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "letter:" + hex.EncodeToString(sum[:]), nil
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode configuration: %v", err), "server.handleConfigExport")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to encode configuration: %v", err), "server.handleConfigExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
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

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, op string) {
	h.logger.Error("request failed",
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
