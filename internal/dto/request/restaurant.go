package request

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	ServiceFee  int    `json:"service_fee" validate:"min=0"`
	Address     string `json:"address" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,max=12"`
	Email       string `json:"email" validate:"required,email"`
}

type DateRangeQuery struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type DateQuery struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
