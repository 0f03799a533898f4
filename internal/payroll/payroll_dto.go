package payroll

type ProcessPayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month" binding:"required"`
}

type ProcessAllPayrollRequest struct {
	Month string `json:"month" binding:"required"`
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Month        string  `json:"month"`
	BasicSalary  float64 `json:"basic_salary"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"net_salary"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	HalfDays     int     `json:"half_days"`
	Leaves       int     `json:"leaves"`
	Status       string  `json:"status"`
	PaymentDate  string  `json:"payment_date"`
}

type ProcessAllResponse struct {
	Month          string `json:"month"`
	ProcessedCount int    `json:"processed_count"`
	SkippedCount   int    `json:"skipped_count"`
}

// SalaryPreviewResponse mirrors the review dialog shown before processing.
type SalaryPreviewResponse struct {
	EmployeeID        string            `json:"employee_id"`
	Month             string            `json:"month"`
	Attendance        AttendanceSummary `json:"attendance"`
	ApprovedLeaveDays int               `json:"approved_leave_days"`
	Breakdown         SalaryBreakdown   `json:"breakdown"`
}

type SalarySlipResponse struct {
	ID            string  `json:"id"`
	PayrollID     string  `json:"payroll_id"`
	EmployeeID    string  `json:"employee_id"`
	Month         string  `json:"month"`
	BasicSalary   float64 `json:"basic_salary"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	NetSalary     float64 `json:"net_salary"`
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	HalfDays      int     `json:"half_days"`
	Leaves        int     `json:"leaves"`
	GeneratedDate string  `json:"generated_date"`
}
