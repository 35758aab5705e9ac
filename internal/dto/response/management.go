package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type ManagerResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	PhoneNumber  string    `json:"phone_number"`
	HireDate     time.Time `json:"hire_date"`
	CreatedAt    time.Time `json:"created_at"`
}

type AdministratorResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ManagerID   *string   `json:"manager_id,omitempty"`
	Title       string    `json:"title"`
	PhoneNumber string    `json:"phone_number"`
	HireDate    time.Time `json:"hire_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func ManagerToResponse(manager *entity.Manager) ManagerResponse {
	return ManagerResponse{
		ID:           manager.ID.String(),
		UserID:       manager.UserID.String(),
		RestaurantID: manager.RestaurantID.String(),
		PhoneNumber:  manager.PhoneNumber,
		HireDate:     manager.HireDate,
		CreatedAt:    manager.CreatedAt,
	}
}

func AdministratorToResponse(admin *entity.Administrator) AdministratorResponse {
	resp := AdministratorResponse{
		ID:          admin.ID.String(),
		UserID:      admin.UserID.String(),
		Title:       admin.Title,
		PhoneNumber: admin.PhoneNumber,
		HireDate:    admin.HireDate,
		CreatedAt:   admin.CreatedAt,
	}
	if admin.ManagerID != nil {
		managerID := admin.ManagerID.String()
		resp.ManagerID = &managerID
	}
	return resp
}
