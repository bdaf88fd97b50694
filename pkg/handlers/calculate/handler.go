package calculate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/metrics"
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/services/engine"
	"github.com/re-tools/property-atlas/pkg/store/cache"
	"github.com/re-tools/property-atlas/pkg/store/fees"
)

const cacheTTL = time.Hour

type Handler struct {
	fees  fees.Store
	cache cache.Cache
}

func NewHandler(feeStore fees.Store, resultCache cache.Cache) *Handler {
	return &Handler{fees: feeStore, cache: resultCache}
}

// Calculate runs the calculation named by the request's type discriminator.
// Identical request bodies are served from the result cache.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var envelope struct {
		Type api.CalculationType `json:"type"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key := cacheKey(body)
	if cached, ok := h.cache.Get(ctx, key); ok {
		metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(cached)); err != nil {
			logger.Error().Err(err).Msg("failed to write cached result")
		}
		return
	}
	metrics.CacheHitsTotal.WithLabelValues("miss").Inc()

	response, err := h.dispatch(ctx, body, envelope.Type)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues(string(envelope.Type), "error").Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrInvalidInput) || errors.Is(err, errBadRequest) || errors.Is(err, errInvalidType) {
			status = http.StatusBadRequest
		}
		logger.Error().Err(err).Str("type", string(envelope.Type)).Msg("calculation failed")
		writeError(w, status, err.Error())
		return
	}
	metrics.CalculationsTotal.WithLabelValues(string(envelope.Type), "ok").Inc()

	encoded, err := json.Marshal(response)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode calculation result")
		writeError(w, http.StatusInternalServerError, "failed to encode result")
		return
	}
	if err := h.cache.Set(ctx, key, string(encoded), cacheTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache calculation result")
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(encoded); err != nil {
		logger.Error().Err(err).Msg("failed to write calculation result")
	}
}

var (
	errBadRequest  = errors.New("invalid request body")
	errInvalidType = errors.New("invalid calculation type")
)

func (h *Handler) dispatch(ctx context.Context, body []byte, calcType api.CalculationType) (any, error) {
	switch calcType {
	case api.TypeSellerFinancing:
		var req api.SellerFinancingRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errBadRequest
		}
		report, err := engine.AnalyzeSellerFinancing(adapters.MapSellerFinancingRequestToDomainInputs(req))
		if err != nil {
			return nil, err
		}
		return adapters.MapSellerFinancingReportToAPI(report), nil

	case api.TypeInvestment:
		var req api.InvestmentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errBadRequest
		}
		report, err := engine.AnalyzeInvestment(adapters.MapInvestmentRequestToDomainInputs(req))
		if err != nil {
			return nil, err
		}
		return adapters.MapInvestmentReportToAPI(report), nil

	case api.TypeClosingCosts:
		var req api.ClosingCostsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errBadRequest
		}
		schedule := h.fees.GetFeeSchedule(ctx)
		report, err := engine.EstimateClosingCosts(adapters.MapClosingCostsRequestToDomainInputs(req), schedule)
		if err != nil {
			return nil, err
		}
		return adapters.MapClosingCostReportToAPI(report), nil

	case api.TypeComparison:
		var req api.ComparisonRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errBadRequest
		}
		report, err := engine.CompareLoans(adapters.MapComparisonRequestToDomainInputs(req))
		if err != nil {
			return nil, err
		}
		return adapters.MapComparisonReportToAPI(report), nil

	default:
		return nil, errInvalidType
	}
}

func cacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "calc:" + hex.EncodeToString(sum[:])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
