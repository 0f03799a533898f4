package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/Rohini2302/Sk-enterprises/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// Authoritative reads used while computing a month of pay.
	ListAttendanceStatuses(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]string, error)
	CountApprovedLeaves(ctx context.Context, companyID, employeeID string, from, to time.Time) (int, error)
	LatestStructureByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructureRef, error)
	ListEmployeeIDsWithStructure(ctx context.Context, companyID string) ([]string, error)
	FindEmployeeRef(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error)

	// Payroll record lifecycle.
	Create(ctx context.Context, record *Payroll) error
	Update(ctx context.Context, record *Payroll) error
	DeleteByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) error
	FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*Payroll, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error)
	FindAllByCompany(ctx context.Context, companyID, month string) ([]Payroll, error)

	// Salary slips.
	CreateSlip(ctx context.Context, slip *SalarySlip) error
	FindSlipByIDAndCompany(ctx context.Context, companyID, id string) (*SalarySlip, error)
	ListSlipsByPayroll(ctx context.Context, companyID, payrollID string) ([]SalarySlip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the transaction's connection, so the
// delete and create inside Process commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	conn, err := gorm.Open(r.db.Dialector, &gorm.Config{ConnPool: tx})
	if err != nil {
		return r
	}
	return &repository{db: conn, tx: tx}
}

func (r *repository) ListAttendanceStatuses(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]string, error) {
	var statuses []string
	err := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("status").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date >= ? AND attendance_date < ?", from, to).
		Where("deleted_at IS NULL").
		Scan(&statuses).Error
	return statuses, err
}

func (r *repository) CountApprovedLeaves(ctx context.Context, companyID, employeeID string, from, to time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_records").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", "approved").
		Where("start_date >= ? AND start_date < ?", from, to).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return int(count), err
}

func (r *repository) LatestStructureByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructureRef, error) {
	var structure SalaryStructureRef
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		First(&structure).Error
	return &structure, err
}

func (r *repository) ListEmployeeIDsWithStructure(ctx context.Context, companyID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("salary_structures").
		Distinct("employee_id::text").
		Scopes(tenant.Scope(companyID)).
		Scan(&ids).Error
	return ids, err
}

func (r *repository) FindEmployeeRef(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&ref, "id = ?", employeeID).Error
	return &ref, err
}

func (r *repository) Create(ctx context.Context, record *Payroll) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Update(ctx context.Context, record *Payroll) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) DeleteByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Delete(&Payroll{}).Error
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*Payroll, error) {
	var record Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		First(&record).Error
	return &record, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error) {
	var record Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID, month string) ([]Payroll, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("month DESC, created_at DESC")

	if month != "" {
		db = db.Where("month = ?", month)
	}

	var records []Payroll
	err := db.Find(&records).Error
	return records, err
}

func (r *repository) CreateSlip(ctx context.Context, slip *SalarySlip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) FindSlipByIDAndCompany(ctx context.Context, companyID, id string) (*SalarySlip, error) {
	var slip SalarySlip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&slip, "id = ?", id).Error
	return &slip, err
}

func (r *repository) ListSlipsByPayroll(ctx context.Context, companyID, payrollID string) ([]SalarySlip, error) {
	var slips []SalarySlip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_id = ?", payrollID).
		Order("created_at DESC").
		Find(&slips).Error
	return slips, err
}
