package scenario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/models/api"
	scenariosvc "github.com/re-tools/property-atlas/pkg/services/scenario"
	scenariostore "github.com/re-tools/property-atlas/pkg/store/scenario"
)

type Handler struct {
	scenarios *scenariosvc.Service
}

func NewHandler(scenarios *scenariosvc.Service) *Handler {
	return &Handler{scenarios: scenarios}
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	scenarios, err := h.scenarios.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list scenarios")
		writeError(w, http.StatusInternalServerError, "failed to list scenarios")
		return
	}

	writeJSON(w, http.StatusOK, adapters.MapDomainScenariosToAPI(scenarios))
}

func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	sc, err := h.scenarios.Get(ctx, id)
	if err != nil {
		if errors.Is(err, scenariostore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scenario not found")
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("failed to get scenario")
		writeError(w, http.StatusInternalServerError, "failed to get scenario")
		return
	}

	writeJSON(w, http.StatusOK, adapters.MapDomainScenarioToAPI(sc))
}

func (h *Handler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.SaveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "scenario name is required")
		return
	}

	sc, err := h.scenarios.Save(ctx, req.Name, req.Data)
	if err != nil {
		logger.Error().Err(err).Str("name", req.Name).Msg("failed to save scenario")
		writeError(w, http.StatusInternalServerError, "failed to save scenario")
		return
	}

	writeJSON(w, http.StatusCreated, adapters.MapDomainScenarioToAPI(sc))
}

func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	if err := h.scenarios.Delete(ctx, id); err != nil {
		if errors.Is(err, scenariostore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scenario not found")
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("failed to delete scenario")
		writeError(w, http.StatusInternalServerError, "failed to delete scenario")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Error{Error: msg})
}
