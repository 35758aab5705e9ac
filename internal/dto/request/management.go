package request

type CreateManagerRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid4"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=15"`
}

type CreateAdministratorRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid4"`
	ManagerID   string `json:"manager_id" validate:"required,uuid4"`
	Title       string `json:"title" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=15"`
}
