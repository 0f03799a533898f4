package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=attendance_repo.go -destination=mocks/attendance_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, record *Attendance) error
	Update(ctx context.Context, record *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error)
	FindAllByCompany(ctx context.Context, companyID string, from, to time.Time) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error)
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	conn, err := gorm.Open(r.db.Dialector, &gorm.Config{ConnPool: tx})
	if err != nil {
		return r
	}
	return &repository{db: conn, tx: tx}
}

func (r *repository) Create(ctx context.Context, record *Attendance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Update(ctx context.Context, record *Attendance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var record Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error) {
	var record Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee")
	if !from.IsZero() {
		query = query.Where("attendance_date >= ? AND attendance_date < ?", from, to)
	}
	err := query.Order("attendance_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("employee_id = ?", employeeID)
	if !from.IsZero() {
		query = query.Where("attendance_date >= ? AND attendance_date < ?", from, to)
	}
	err := query.Order("attendance_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Attendance{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
