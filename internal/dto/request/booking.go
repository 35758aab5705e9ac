package request

type OrderItemRequest struct {
	MenuID string `json:"menu_id" validate:"required,uuid4"`
	Amount int    `json:"amount" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	RoomID         string             `json:"room_id" validate:"required,uuid4"`
	ClientName     string             `json:"client_name" validate:"required,max=100"`
	ClientNumber   string             `json:"client_number" validate:"required,min=7,max=15"`
	NumberOfPeople int                `json:"number_of_people" validate:"required,min=1"`
	PlannedFrom    string             `json:"planned_from" validate:"required"`
	PlannedTo      string             `json:"planned_to" validate:"required"`
	Occasion       *string            `json:"occasion,omitempty"`
	OrderItems     []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
}
