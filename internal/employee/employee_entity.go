package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_number"`

	EmployeeNumber string `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName       string `gorm:"column:full_name;not null"`
	Email          string `gorm:"uniqueIndex:uq_employee_email"`
	Phone          string `gorm:"type:varchar(20)"`

	Department string `gorm:"type:varchar(100)"`
	Position   string `gorm:"type:varchar(100)"`

	JoinDate time.Time `gorm:"type:date;not null"`
	// Gross monthly figure captured at onboarding; payroll reads the
	// salary structure, not this hint.
	MonthlySalary float64 `gorm:"type:double precision;not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;default:'active'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
