package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/adaptor"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"
)

func wireManagement(
	r chi.Router,
	managementHandler *adaptor.ManagementHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// GET /api/managers - List all managers
		r.Get("/api/managers", managementHandler.GetManagers)

		r.Route("/api/restaurants/{id}/managers", func(r chi.Router) {
			// POST / - Appoint a manager for the restaurant
			r.Post("/", managementHandler.CreateManager)

			// POST /admins - Create an administrator under a manager
			r.Post("/admins", managementHandler.CreateAdministrator)

			// DELETE /admins/{adminID} - Remove an administrator
			r.Delete("/admins/{adminID}", managementHandler.DeleteAdministrator)
		})
	})
}
