package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DexBinder_Go/internal/binder"
	"github.com/osse101/DexBinder_Go/internal/logger"
	"github.com/osse101/DexBinder_Go/internal/metrics"
	"github.com/osse101/DexBinder_Go/internal/repository"
	"github.com/osse101/DexBinder_Go/internal/validation"
)

// SlotsHandler handles binder slot HTTP requests
type SlotsHandler struct {
	service binder.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service binder.Service) *SlotsHandler {
	return &SlotsHandler{service: service}
}

// dexNumber extracts and parses the {number} URL parameter. On failure it has
// already written the 400 response and returns ok=false.
func dexNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, "Invalid dex number")
		return 0, false
	}
	return number, true
}

// decodeBody decodes a JSON request body. On failure it has already written
// the 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Debug("Failed to decode request body", "error", err)
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, "Malformed JSON in request body")
		return false
	}
	return true
}

// HandleList lists slots with optional owned/range filters
// @Summary List binder slots
// @Description Lists slots ascending by dex number, optionally filtered by ownership and an inclusive number range
// @Tags slots
// @Produce json
// @Param owned query bool false "Only owned (true) or only empty (false) slots"
// @Param from query int false "Lower dex number bound (inclusive)"
// @Param to query int false "Upper dex number bound (inclusive)"
// @Success 200 {array} domain.Slot
// @Failure 400 {object} ErrorResponse
// @Router /slots [get]
func (h *SlotsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query, err := validation.ParseSlotListQuery(r.URL.Query())
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("slot_list_query").Inc()
		respondValidationError(w, r, err)
		return
	}

	slots, err := h.service.List(r.Context(), repository.SlotFilter{
		Owned: query.Owned,
		From:  query.From,
		To:    query.To,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, slots)
}

// HandleGet returns a single slot
// @Summary Get one binder slot
// @Tags slots
// @Produce json
// @Param number path int true "Dex number"
// @Success 200 {object} domain.Slot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /slots/{number} [get]
func (h *SlotsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	slot, err := h.service.Get(r.Context(), number)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, slot)
}

// HandleCreate creates a single slot explicitly
// @Summary Create a binder slot
// @Description Creates one slot; status is derived from whether an initial current card is supplied
// @Tags slots
// @Accept json
// @Produce json
// @Param request body validation.CreateSlotInput true "Slot to create"
// @Success 201 {object} domain.Slot
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /slots [post]
func (h *SlotsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateSlotInput
	if !decodeBody(w, r, &input) {
		return
	}

	create, err := validation.ParseCreateSlot(&input)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("create_slot").Inc()
		respondValidationError(w, r, err)
		return
	}

	slot, err := h.service.Create(r.Context(), create)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, slot)
}

// HandlePatchMeta updates slot metadata without touching current or history
// @Summary Patch slot metadata
// @Description Overwrites only the provided fields (wishlist, priority, status, referenceName)
// @Tags slots
// @Accept json
// @Produce json
// @Param number path int true "Dex number"
// @Param request body validation.PatchMetaInput true "Fields to overwrite"
// @Success 200 {object} domain.Slot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /slots/{number} [patch]
func (h *SlotsHandler) HandlePatchMeta(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	var input validation.PatchMetaInput
	if !decodeBody(w, r, &input) {
		return
	}

	patch, err := validation.ParsePatchMeta(&input)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("patch_meta").Inc()
		respondValidationError(w, r, err)
		return
	}

	slot, err := h.service.PatchMetadata(r.Context(), number, patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, slot)
}

// HandleReplace files a new current card, archiving any prior one
// @Summary Replace the current card
// @Description Archives the outgoing card to history with reason "upgrade", then files the new card
// @Tags slots
// @Accept json
// @Produce json
// @Param number path int true "Dex number"
// @Param request body validation.ReplaceCurrentInput true "Replacement card"
// @Success 200 {object} domain.Slot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /slots/{number}/replace [put]
func (h *SlotsHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	var input validation.ReplaceCurrentInput
	if !decodeBody(w, r, &input) {
		return
	}

	card, err := validation.ParseReplaceCurrent(&input)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("replace_current").Inc()
		respondValidationError(w, r, err)
		return
	}

	slot, err := h.service.Replace(r.Context(), number, card)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, slot)
}

// HandleClear removes the current card, archiving it with reason "remove"
// @Summary Clear the current card
// @Description Idempotent: clearing an already-empty slot succeeds without changes
// @Tags slots
// @Param number path int true "Dex number"
// @Success 204 "cleared"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /slots/{number}/current [delete]
func (h *SlotsHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	number, ok := dexNumber(w, r)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), number); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSeed ensures a slot exists for every dex number
// @Summary Seed the full binder
// @Description Idempotent bulk upsert of all 1025 slots; existing slots are never reset
// @Tags slots
// @Produce json
// @Success 200 {object} SeedResponse
// @Router /slots/admin/seed [post]
func (h *SlotsHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Seed(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, SeedResponse{OK: true, Count: count})
}
