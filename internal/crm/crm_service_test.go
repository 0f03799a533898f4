package crm_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/crm"
	crmerrors "github.com/Rohini2302/Sk-enterprises/internal/crm/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCRMRepository struct {
	createClientFn           func(ctx context.Context, client *crm.Client) error
	updateClientFn           func(ctx context.Context, client *crm.Client) error
	findClientByIDFn         func(ctx context.Context, companyID, id string) (*crm.Client, error)
	findAllClientsFn         func(ctx context.Context, companyID, status string) ([]crm.Client, error)
	deleteClientFn           func(ctx context.Context, companyID, id string) error
	createLeadFn             func(ctx context.Context, lead *crm.Lead) error
	updateLeadFn             func(ctx context.Context, lead *crm.Lead) error
	findLeadByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*crm.Lead, error)
	findAllLeadsFn           func(ctx context.Context, companyID, status string) ([]crm.Lead, error)
	deleteLeadFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeCRMRepository) WithTx(tx *sql.Tx) crm.Repository { return f }

func (f *fakeCRMRepository) CreateClient(ctx context.Context, client *crm.Client) error {
	if f.createClientFn != nil {
		return f.createClientFn(ctx, client)
	}
	return nil
}

func (f *fakeCRMRepository) UpdateClient(ctx context.Context, client *crm.Client) error {
	if f.updateClientFn != nil {
		return f.updateClientFn(ctx, client)
	}
	return nil
}

func (f *fakeCRMRepository) FindClientByIDAndCompany(ctx context.Context, companyID, id string) (*crm.Client, error) {
	if f.findClientByIDFn != nil {
		return f.findClientByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCRMRepository) FindAllClientsByCompany(ctx context.Context, companyID, status string) ([]crm.Client, error) {
	if f.findAllClientsFn != nil {
		return f.findAllClientsFn(ctx, companyID, status)
	}
	return nil, nil
}

func (f *fakeCRMRepository) DeleteClient(ctx context.Context, companyID, id string) error {
	if f.deleteClientFn != nil {
		return f.deleteClientFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeCRMRepository) CreateLead(ctx context.Context, lead *crm.Lead) error {
	if f.createLeadFn != nil {
		return f.createLeadFn(ctx, lead)
	}
	return nil
}

func (f *fakeCRMRepository) UpdateLead(ctx context.Context, lead *crm.Lead) error {
	if f.updateLeadFn != nil {
		return f.updateLeadFn(ctx, lead)
	}
	return nil
}

func (f *fakeCRMRepository) FindLeadByIDAndCompany(ctx context.Context, companyID, id string) (*crm.Lead, error) {
	if f.findLeadByIDAndCompanyFn != nil {
		return f.findLeadByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCRMRepository) FindAllLeadsByCompany(ctx context.Context, companyID, status string) ([]crm.Lead, error) {
	if f.findAllLeadsFn != nil {
		return f.findAllLeadsFn(ctx, companyID, status)
	}
	return nil, nil
}

func (f *fakeCRMRepository) DeleteLead(ctx context.Context, companyID, id string) error {
	if f.deleteLeadFn != nil {
		return f.deleteLeadFn(ctx, companyID, id)
	}
	return nil
}

func TestCRMService_UpdateLeadStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	leadID := uuid.New()

	t.Run("moves an open lead forward", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeCRMRepository{
			findLeadByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*crm.Lead, error) {
				return &crm.Lead{ID: leadID, CompanyID: companyID, Name: "Acme", Status: crm.LeadStatusContacted}, nil
			},
		}
		var updated *crm.Lead
		repo.updateLeadFn = func(ctx context.Context, lead *crm.Lead) error {
			updated = lead
			return nil
		}

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		svc := crm.NewService(db, repo)
		resp, err := svc.UpdateLeadStatus(ctx, companyID.String(), leadID.String(), crm.UpdateLeadStatusRequest{Status: crm.LeadStatusQualified})

		assert.NoError(t, err)
		assert.Equal(t, crm.LeadStatusQualified, resp.Status)
		assert.NotNil(t, updated)
		assert.Equal(t, crm.LeadStatusQualified, updated.Status)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects an unknown status before touching the database", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := crm.NewService(db, &fakeCRMRepository{})
		_, err = svc.UpdateLeadStatus(ctx, companyID.String(), leadID.String(), crm.UpdateLeadStatusRequest{Status: "archived"})

		assert.ErrorIs(t, err, crmerrors.ErrInvalidLeadStatus)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("closed leads stay closed", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeCRMRepository{
			findLeadByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*crm.Lead, error) {
				return &crm.Lead{ID: leadID, CompanyID: companyID, Name: "Acme", Status: crm.LeadStatusClosedWon}, nil
			},
		}
		updateCalled := false
		repo.updateLeadFn = func(ctx context.Context, lead *crm.Lead) error {
			updateCalled = true
			return nil
		}

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		svc := crm.NewService(db, repo)
		_, err = svc.UpdateLeadStatus(ctx, companyID.String(), leadID.String(), crm.UpdateLeadStatusRequest{Status: crm.LeadStatusNew})

		assert.ErrorIs(t, err, crmerrors.ErrLeadAlreadyClosed)
		assert.False(t, updateCalled, "a closed lead must not be reopened")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestCRMService_CreateLead_DefaultsToNew(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeCRMRepository{}
	var created *crm.Lead
	repo.createLeadFn = func(ctx context.Context, lead *crm.Lead) error {
		created = lead
		return nil
	}

	svc := crm.NewService(db, repo)
	resp, err := svc.CreateLead(ctx, companyID, crm.CreateLeadRequest{
		Name:           "Globex",
		EstimatedValue: 75000,
	})

	assert.NoError(t, err)
	assert.Equal(t, crm.LeadStatusNew, resp.Status)
	assert.NotNil(t, created)
	assert.Equal(t, companyID, created.CompanyID.String())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
