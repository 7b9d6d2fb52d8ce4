package handler

import (
	"net/http"

	"github.com/osse101/DexBinder_Go/internal/dex"
	"github.com/osse101/DexBinder_Go/internal/metrics"
	"github.com/osse101/DexBinder_Go/internal/repository"
	"github.com/osse101/DexBinder_Go/internal/validation"
)

// DexHandler handles catalog reference HTTP requests
type DexHandler struct {
	service dex.Service
}

// NewDexHandler creates a new catalog handler
func NewDexHandler(service dex.Service) *DexHandler {
	return &DexHandler{service: service}
}

// HandleList lists catalog entries with optional filters
// @Summary List catalog entries
// @Description Lists entries ascending by dex number, filtered by name substring, type tag, and number range
// @Tags dex
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param type query string false "Type tag, exact case-insensitive match"
// @Param from query int false "Lower dex number bound (inclusive)"
// @Param to query int false "Upper dex number bound (inclusive)"
// @Success 200 {array} domain.CatalogEntry
// @Failure 400 {object} ErrorResponse
// @Router /dex [get]
func (h *DexHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query, err := validation.ParseCatalogListQuery(r.URL.Query())
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("catalog_list_query").Inc()
		respondValidationError(w, r, err)
		return
	}

	entries, err := h.service.List(r.Context(), repository.CatalogFilter{
		Name: query.Name,
		Type: query.Type,
		From: query.From,
		To:   query.To,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// HandleGet returns a single catalog entry
// @Summary Get one catalog entry
// @Tags dex
// @Produce json
// @Param number path int true "Dex number"
// @Success 200 {object} domain.CatalogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dex/{number} [get]
func (h *DexHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	entry, err := h.service.Get(r.Context(), number)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// HandleCreate creates a catalog entry
// @Summary Create a catalog entry
// @Tags dex
// @Accept json
// @Produce json
// @Param request body validation.CreateCatalogEntryInput true "Entry to create"
// @Success 201 {object} domain.CatalogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dex [post]
func (h *DexHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateCatalogEntryInput
	if !decodeBody(w, r, &input) {
		return
	}

	entry, err := validation.ParseCreateCatalogEntry(&input)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("create_catalog_entry").Inc()
		respondValidationError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), entry)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleUpdate overwrites the provided fields of a catalog entry
// @Summary Update a catalog entry
// @Tags dex
// @Accept json
// @Produce json
// @Param number path int true "Dex number"
// @Param request body validation.UpdateCatalogEntryInput true "Fields to overwrite"
// @Success 200 {object} domain.CatalogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dex/{number} [put]
func (h *DexHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	var input validation.UpdateCatalogEntryInput
	if !decodeBody(w, r, &input) {
		return
	}

	patch, err := validation.ParseUpdateCatalogEntry(&input)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("update_catalog_entry").Inc()
		respondValidationError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), number, patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// HandleDelete removes a catalog entry; binder slots are unaffected
// @Summary Delete a catalog entry
// @Tags dex
// @Param number path int true "Dex number"
// @Success 204 "deleted"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dex/{number} [delete]
func (h *DexHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), number); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
