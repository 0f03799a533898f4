package performance

type CreateReviewRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Notes      string `json:"notes"`
}

type UpdateReviewRequest struct {
	Period string `json:"period" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Notes  string `json:"notes"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Period       string `json:"period"`
	Rating       int    `json:"rating"`
	Notes        string `json:"notes,omitempty"`
}
