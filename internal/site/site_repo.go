package site

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	siteerrors "github.com/Rohini2302/Sk-enterprises/internal/site/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=site_repo.go -destination=mocks/site_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, site *Site) error
	Update(ctx context.Context, site *Site) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Site, error)
	FindAllByCompany(ctx context.Context, companyID, status string) ([]Site, error)
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

func (r *repository) Create(ctx context.Context, site *Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *repository) Update(ctx context.Context, site *Site) error {
	return r.db.WithContext(ctx).Save(site).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Site, error) {
	var site Site
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, siteerrors.ErrSiteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID, status string) ([]Site, error) {
	var rows []Site
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Site{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return siteerrors.ErrSiteNotFound
	}
	return nil
}
