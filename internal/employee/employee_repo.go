package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	employeeerrors "github.com/Rohini2302/Sk-enterprises/internal/employee/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=employee_repo.go -destination=mocks/employee_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindAllByCompany(ctx context.Context, companyID, status string) ([]Employee, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&empl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID, status string) ([]Employee, error) {
	var rows []Employee
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("employee_number ASC").Find(&rows).Error
	return rows, err
}

// FindOptionsByCompany returns the slim projection used to fill employee
// dropdowns, active staff only.
func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("id", "employee_number", "full_name", "department", "position").
		Where("status = ?", "active").
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}
	return nil
}
