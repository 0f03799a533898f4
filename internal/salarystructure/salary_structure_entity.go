package salarystructure

import (
	"time"

	"github.com/google/uuid"
)

// SalaryStructure is the fixed pay configuration for one employee,
// independent of any given month. One per employee by convention only;
// duplicates are tolerated and payroll picks the most recent.
type SalaryStructure struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	BasicSalary float64 `gorm:"type:double precision;not null;default:0"`

	// Allowances
	HRA              float64 `gorm:"column:hra;type:double precision;not null;default:0"`
	DA               float64 `gorm:"column:da;type:double precision;not null;default:0"`
	SpecialAllowance float64 `gorm:"type:double precision;not null;default:0"`
	Conveyance       float64 `gorm:"type:double precision;not null;default:0"`
	MedicalAllowance float64 `gorm:"type:double precision;not null;default:0"`
	OtherAllowances  float64 `gorm:"type:double precision;not null;default:0"`

	// Deductions
	ProvidentFund   float64 `gorm:"type:double precision;not null;default:0"`
	ProfessionalTax float64 `gorm:"type:double precision;not null;default:0"`
	IncomeTax       float64 `gorm:"type:double precision;not null;default:0"`
	OtherDeductions float64 `gorm:"type:double precision;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
