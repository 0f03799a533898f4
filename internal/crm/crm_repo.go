package crm

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	crmerrors "github.com/Rohini2302/Sk-enterprises/internal/crm/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=crm_repo.go -destination=mocks/crm_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateClient(ctx context.Context, client *Client) error
	UpdateClient(ctx context.Context, client *Client) error
	FindClientByIDAndCompany(ctx context.Context, companyID, id string) (*Client, error)
	FindAllClientsByCompany(ctx context.Context, companyID, status string) ([]Client, error)
	DeleteClient(ctx context.Context, companyID, id string) error

	CreateLead(ctx context.Context, lead *Lead) error
	UpdateLead(ctx context.Context, lead *Lead) error
	FindLeadByIDAndCompany(ctx context.Context, companyID, id string) (*Lead, error)
	FindAllLeadsByCompany(ctx context.Context, companyID, status string) ([]Lead, error)
	DeleteLead(ctx context.Context, companyID, id string) error
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

func (r *repository) CreateClient(ctx context.Context, client *Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *repository) UpdateClient(ctx context.Context, client *Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *repository) FindClientByIDAndCompany(ctx context.Context, companyID, id string) (*Client, error) {
	var client Client
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, crmerrors.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *repository) FindAllClientsByCompany(ctx context.Context, companyID, status string) ([]Client, error) {
	var rows []Client
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteClient(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return crmerrors.ErrClientNotFound
	}
	return nil
}

func (r *repository) CreateLead(ctx context.Context, lead *Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *repository) UpdateLead(ctx context.Context, lead *Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *repository) FindLeadByIDAndCompany(ctx context.Context, companyID, id string) (*Lead, error) {
	var lead Lead
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, crmerrors.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *repository) FindAllLeadsByCompany(ctx context.Context, companyID, status string) ([]Lead, error) {
	var rows []Lead
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteLead(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Lead{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return crmerrors.ErrLeadNotFound
	}
	return nil
}
