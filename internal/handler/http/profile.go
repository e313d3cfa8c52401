package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/user"
	"github.com/HarshitVatsa-7/employee-management-system/internal/handler/http/response"
)

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	userService user.UserService
}

func NewProfileHandler(userService user.UserService) ProfileHandler {
	return &profileHandlerImpl{
		userService: userService,
	}
}

// Get implements ProfileHandler.
func (h *profileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.GetProfile(r.Context())
	if err != nil {
		slog.Error("Get profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Complete implements ProfileHandler.
func (h *profileHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	var req user.CompleteProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Complete profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.userService.CompleteProfile(r.Context(), req)
	if err != nil {
		slog.Error("Complete profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile completed successfully", profile)
}
