package payroll

import (
	"time"

	"github.com/google/uuid"
)

type Payroll struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_payroll_company_month"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_payroll_employee_month,unique"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	// Month token, e.g. "2026-08". One record per employee per month.
	Month string `gorm:"type:varchar(7);not null;index:idx_payroll_employee_month,unique;index:idx_payroll_company_month"`

	BasicSalary float64 `gorm:"type:double precision;not null;default:0"`
	Allowances  float64 `gorm:"type:double precision;not null;default:0"`
	Deductions  float64 `gorm:"type:double precision;not null;default:0"`
	NetSalary   float64 `gorm:"type:double precision;not null;default:0"`

	// Attendance counters snapshotted at processing time
	PresentDays int `gorm:"type:int;not null;default:0"`
	AbsentDays  int `gorm:"type:int;not null;default:0"`
	HalfDays    int `gorm:"type:int;not null;default:0"`
	Leaves      int `gorm:"type:int;not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;default:'processed'"`
	// Empty until the record is marked paid, then "YYYY-MM-DD".
	PaymentDate string `gorm:"type:varchar(10);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payroll) TableName() string {
	return "payroll_records"
}

type SalarySlip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PayrollID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Month      string    `gorm:"type:varchar(7);not null"`

	BasicSalary float64 `gorm:"type:double precision;not null;default:0"`
	Allowances  float64 `gorm:"type:double precision;not null;default:0"`
	Deductions  float64 `gorm:"type:double precision;not null;default:0"`
	NetSalary   float64 `gorm:"type:double precision;not null;default:0"`

	PresentDays int `gorm:"type:int;not null;default:0"`
	AbsentDays  int `gorm:"type:int;not null;default:0"`
	HalfDays    int `gorm:"type:int;not null;default:0"`
	Leaves      int `gorm:"type:int;not null;default:0"`

	GeneratedDate string `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName       string    `gorm:"column:full_name"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	Department     string    `gorm:"column:department"`
	Position       string    `gorm:"column:position"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// SalaryStructureRef is a read-only projection of the salary_structures
// table owned by the salarystructure package.
type SalaryStructureRef struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID `gorm:"column:employee_id"`
	BasicSalary      float64   `gorm:"column:basic_salary"`
	HRA              float64   `gorm:"column:hra"`
	DA               float64   `gorm:"column:da"`
	SpecialAllowance float64   `gorm:"column:special_allowance"`
	Conveyance       float64   `gorm:"column:conveyance"`
	MedicalAllowance float64   `gorm:"column:medical_allowance"`
	OtherAllowances  float64   `gorm:"column:other_allowances"`
	ProvidentFund    float64   `gorm:"column:provident_fund"`
	ProfessionalTax  float64   `gorm:"column:professional_tax"`
	IncomeTax        float64   `gorm:"column:income_tax"`
	OtherDeductions  float64   `gorm:"column:other_deductions"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (SalaryStructureRef) TableName() string {
	return "salary_structures"
}
