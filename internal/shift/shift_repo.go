package shift

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	shifterrors "github.com/Rohini2302/Sk-enterprises/internal/shift/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=shift_repo.go -destination=mocks/shift_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, shift *Shift) error
	Update(ctx context.Context, shift *Shift) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Shift, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Shift, error)
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

func (r *repository) Create(ctx context.Context, shift *Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *repository) Update(ctx context.Context, shift *Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Shift, error) {
	var shift Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shifterrors.ErrShiftNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Shift{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shifterrors.ErrShiftNotFound
	}
	return nil
}
