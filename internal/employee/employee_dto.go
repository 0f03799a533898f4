package employee

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	JoinDate       string  `json:"join_date" binding:"required"`
	MonthlySalary  float64 `json:"monthly_salary" binding:"gte=0"`
	EmployeeNumber string  `json:"employee_number"`
}

type UpdateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Department    string  `json:"department"`
	Position      string  `json:"position"`
	JoinDate      string  `json:"join_date" binding:"required"`
	MonthlySalary float64 `json:"monthly_salary" binding:"gte=0"`
	Status        string  `json:"status" binding:"required,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Department     string  `json:"department,omitempty"`
	Position       string  `json:"position,omitempty"`
	JoinDate       string  `json:"join_date"`
	MonthlySalary  float64 `json:"monthly_salary"`
	Status         string  `json:"status"`
}
