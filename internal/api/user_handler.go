package api

import (
	"net/http"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/services"
	"pauta_voting_system/internal/validation"

	"go.uber.org/zap"
)

type UserHandler struct {
	userService services.UserService
	logger      *zap.SugaredLogger
}

func NewUserHandler(userService services.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// Register handles POST /user
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, errMalformedBody(), h.logger)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.CPF, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user), h.logger)
}

// Authenticate handles POST /auth
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, errMalformedBody(), h.logger)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user), h.logger)
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		CPF:   user.CPF,
	}
}
