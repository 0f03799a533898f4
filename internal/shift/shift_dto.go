package shift

type CreateShiftRequest struct {
	Name        string   `json:"name" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	EmployeeIDs []string `json:"employee_ids" binding:"dive,uuid"`
}

type UpdateShiftRequest struct {
	Name        string   `json:"name" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	EmployeeIDs []string `json:"employee_ids" binding:"dive,uuid"`
}

type ShiftResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	EmployeeIDs []string `json:"employee_ids"`
}
