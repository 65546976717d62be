package api

import (
	"net/http"
	"pauta_voting_system/internal/services"
	"pauta_voting_system/internal/validation"
	"strconv"

	"go.uber.org/zap"
)

type SectionHandler struct {
	sectionService services.SectionService
	logger         *zap.SugaredLogger
}

func NewSectionHandler(sectionService services.SectionService, logger *zap.SugaredLogger) *SectionHandler {
	return &SectionHandler{sectionService: sectionService, logger: logger}
}

// Create handles POST /section
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, errMalformedBody(), h.logger)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	section, err := h.sectionService.Create(r.Context(), req.Name, req.Description, *req.Expiration)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, section, h.logger)
}

// List handles GET /section?userId=
func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		writeError(w, r, validation.NewRequestValidationError("userId", "userId é obrigatório"), h.logger)
		return
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, r, validation.NewRequestValidationError("userId", "userId deve ser um número válido"), h.logger)
		return
	}

	sections, err := h.sectionService.GetManyWithVoteCounts(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sections, h.logger)
}
