package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	leaveerrors "github.com/Rohini2302/Sk-enterprises/internal/leave/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=leave_repo.go -destination=mocks/leave_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, leave *Leave) error
	Update(ctx context.Context, leave *Leave) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error)
	FindAllByCompany(ctx context.Context, companyID, status string) ([]Leave, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Leave, error)
	FindApprovedStartingIn(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Leave, error)
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

func (r *repository) Create(ctx context.Context, leave *Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *repository) Update(ctx context.Context, leave *Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error) {
	var leave Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("id = ?", id).
		First(&leave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID, status string) ([]Leave, error) {
	var rows []Leave
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindApprovedStartingIn(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date >= ? AND start_date < ?", from, to).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Leave{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return leaveerrors.ErrLeaveNotFound
	}
	return nil
}
