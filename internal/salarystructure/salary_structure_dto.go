package salarystructure

type CreateSalaryStructureRequest struct {
	EmployeeID       string  `json:"employee_id" binding:"required,uuid"`
	BasicSalary      float64 `json:"basic_salary" binding:"required,gte=0"`
	HRA              float64 `json:"hra" binding:"gte=0"`
	DA               float64 `json:"da" binding:"gte=0"`
	SpecialAllowance float64 `json:"special_allowance" binding:"gte=0"`
	Conveyance       float64 `json:"conveyance" binding:"gte=0"`
	MedicalAllowance float64 `json:"medical_allowance" binding:"gte=0"`
	OtherAllowances  float64 `json:"other_allowances" binding:"gte=0"`
	ProvidentFund    float64 `json:"provident_fund" binding:"gte=0"`
	ProfessionalTax  float64 `json:"professional_tax" binding:"gte=0"`
	IncomeTax        float64 `json:"income_tax" binding:"gte=0"`
	OtherDeductions  float64 `json:"other_deductions" binding:"gte=0"`
}

type UpdateSalaryStructureRequest struct {
	BasicSalary      float64 `json:"basic_salary" binding:"required,gte=0"`
	HRA              float64 `json:"hra" binding:"gte=0"`
	DA               float64 `json:"da" binding:"gte=0"`
	SpecialAllowance float64 `json:"special_allowance" binding:"gte=0"`
	Conveyance       float64 `json:"conveyance" binding:"gte=0"`
	MedicalAllowance float64 `json:"medical_allowance" binding:"gte=0"`
	OtherAllowances  float64 `json:"other_allowances" binding:"gte=0"`
	ProvidentFund    float64 `json:"provident_fund" binding:"gte=0"`
	ProfessionalTax  float64 `json:"professional_tax" binding:"gte=0"`
	IncomeTax        float64 `json:"income_tax" binding:"gte=0"`
	OtherDeductions  float64 `json:"other_deductions" binding:"gte=0"`
}

type SalaryStructureResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name,omitempty"`
	BasicSalary      float64 `json:"basic_salary"`
	HRA              float64 `json:"hra"`
	DA               float64 `json:"da"`
	SpecialAllowance float64 `json:"special_allowance"`
	Conveyance       float64 `json:"conveyance"`
	MedicalAllowance float64 `json:"medical_allowance"`
	OtherAllowances  float64 `json:"other_allowances"`
	ProvidentFund    float64 `json:"provident_fund"`
	ProfessionalTax  float64 `json:"professional_tax"`
	IncomeTax        float64 `json:"income_tax"`
	OtherDeductions  float64 `json:"other_deductions"`
	TotalAllowances  float64 `json:"total_allowances"`
	TotalDeductions  float64 `json:"total_deductions"`
	TotalCTC         float64 `json:"total_ctc"`
}
