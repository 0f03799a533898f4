package performance

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	performanceerrors "github.com/Rohini2302/Sk-enterprises/internal/performance/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=performance_repo.go -destination=mocks/performance_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Review, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Review, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Review, error)
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

func (r *repository) Create(ctx context.Context, review *Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *repository) Update(ctx context.Context, review *Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Review, error) {
	var review Review
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("id = ?", id).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, performanceerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return performanceerrors.ErrReviewNotFound
	}
	return nil
}
