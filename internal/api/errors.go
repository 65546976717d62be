package api

import (
	"errors"
	"net/http"
	"pauta_voting_system/internal/services"
	"pauta_voting_system/internal/validation"

	"go.uber.org/zap"
)

const (
	codeValidation         = "VALIDATION_ERROR"
	codeSectionNotFound    = "SECTION_NOT_FOUND"
	codeSectionExpired     = "SECTION_EXPIRED"
	codeUserAlreadyVoted   = "USER_ALREADY_VOTED"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeEmailTaken         = "EMAIL_TAKEN"
	codeCPFTaken           = "CPF_TAKEN"
	codeInternal           = "INTERNAL_ERROR"

	messageInternal = "Erro interno do servidor"
)

type clientError struct {
	target  error
	code    string
	message string
}

var clientErrors = []clientError{
	{services.ErrSectionNotFound, codeSectionNotFound, "Seção não encontrada."},
	{services.ErrSectionExpired, codeSectionExpired, "Seção expirada."},
	{services.ErrDuplicateVote, codeUserAlreadyVoted, "Esse usuário já votou nesta seção."},
	{services.ErrInvalidCredentials, codeInvalidCredentials, "Credenciais inválidas!"},
	{services.ErrEmailTaken, codeEmailTaken, "Email já cadastrado"},
	{services.ErrCPFTaken, codeCPFTaken, "CPF já cadastrado"},
}

// writeError maps service and validation errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger *zap.SugaredLogger) {
	var validationErr *validation.RequestValidationError
	if errors.As(err, &validationErr) {
		writeErrorResponse(w, r, http.StatusBadRequest, codeValidation, validationErr.Error(), logger)
		return
	}

	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr.target) {
			writeErrorResponse(w, r, http.StatusBadRequest, clientErr.code, clientErr.message, logger)
			return
		}
	}

	logger.Errorw("failed to handle request", "path", r.URL.Path, "requestID", requestIDFrom(r.Context()), "error", err)
	writeErrorResponse(w, r, http.StatusInternalServerError, codeInternal, messageInternal, logger)
}
