package api

import (
	"net/http"
	"pauta_voting_system/internal/services"
	"pauta_voting_system/internal/validation"

	"go.uber.org/zap"
)

type VoteHandler struct {
	voteService services.VoteService
	logger      *zap.SugaredLogger
}

func NewVoteHandler(voteService services.VoteService, logger *zap.SugaredLogger) *VoteHandler {
	return &VoteHandler{voteService: voteService, logger: logger}
}

// SubmitVote handles POST /votes
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req submitVoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, errMalformedBody(), h.logger)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	vote, err := h.voteService.SubmitVote(r.Context(), *req.SectionID, *req.UserID, *req.Vote)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, vote, h.logger)
}

func errMalformedBody() *validation.RequestValidationError {
	return validation.NewRequestValidationError("body", "Corpo da requisição inválido")
}
