package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"
)

type ManagementHandler struct {
	service usecase.ManagementService
	log     *zap.Logger
}

func NewManagementHandler(service usecase.ManagementService, log *zap.Logger) *ManagementHandler {
	return &ManagementHandler{
		service: service,
		log:     log.With(zap.String("handler", "management")),
	}
}

// CreateManager handles POST /api/restaurants/{id}/managers (staff only)
func (h *ManagementHandler) CreateManager(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var req request.CreateManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	manager, err := h.service.CreateManager(r.Context(), userID, role, restaurantID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create manager")
		return
	}

	utils.ResponseCreated(w, "Manager created successfully", manager)
}

// GetManagers handles GET /api/managers
func (h *ManagementHandler) GetManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.service.GetManagers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get managers")
		return
	}

	utils.ResponseSuccess(w, "success", managers)
}

// CreateAdministrator handles POST /api/restaurants/{id}/managers/admins (staff only)
func (h *ManagementHandler) CreateAdministrator(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var req request.CreateAdministratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	admin, err := h.service.CreateAdministrator(r.Context(), userID, role, restaurantID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create administrator")
		return
	}

	utils.ResponseCreated(w, "Administrator created successfully", admin)
}

// DeleteAdministrator handles DELETE /api/restaurants/{id}/managers/admins/{adminID} (staff only)
func (h *ManagementHandler) DeleteAdministrator(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	adminID := chi.URLParam(r, "adminID")
	if restaurantID == "" || adminID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID and administrator ID are required", nil)
		return
	}

	if err := h.service.DeleteAdministrator(r.Context(), userID, role, restaurantID, adminID); err != nil {
		handleServiceError(h.log, w, err, "delete administrator")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
