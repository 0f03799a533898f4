package site_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/site"
	siteerrors "github.com/Rohini2302/Sk-enterprises/internal/site/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSiteRepository struct {
	createFn             func(ctx context.Context, row *site.Site) error
	updateFn             func(ctx context.Context, row *site.Site) error
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*site.Site, error)
	findAllByCompanyFn   func(ctx context.Context, companyID, status string) ([]site.Site, error)
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeSiteRepository) WithTx(tx *sql.Tx) site.Repository { return f }

func (f *fakeSiteRepository) Create(ctx context.Context, row *site.Site) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeSiteRepository) Update(ctx context.Context, row *site.Site) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakeSiteRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*site.Site, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, siteerrors.ErrSiteNotFound
}

func (f *fakeSiteRepository) FindAllByCompany(ctx context.Context, companyID, status string) ([]site.Site, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, status)
	}
	return nil, nil
}

func (f *fakeSiteRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func TestSiteService_Create(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	companyID := uuid.New().String()

	repo := &fakeSiteRepository{}
	var created *site.Site
	repo.createFn = func(ctx context.Context, row *site.Site) error {
		created = row
		return nil
	}

	svc := site.NewService(db, repo)
	resp, err := svc.Create(context.Background(), companyID, site.CreateSiteRequest{
		Name:            "Tower A",
		ClientName:      "Acme Facilities",
		Location:        "Pune",
		AreaSqft:        12000,
		ContractValue:   450000,
		ContractEndDate: "2027-03-31",
		Services:        "housekeeping,security",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Tower A", resp.Name)
	assert.Equal(t, "active", resp.Status, "new sites start active")
	assert.Equal(t, "2027-03-31", resp.ContractEndDate)
	assert.NotNil(t, created)
	assert.Equal(t, companyID, created.CompanyID.String())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSiteService_Create_RejectsBadContractEnd(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := site.NewService(db, &fakeSiteRepository{})
	_, err = svc.Create(context.Background(), uuid.New().String(), site.CreateSiteRequest{
		Name:            "Tower B",
		ContractEndDate: "31-03-2027",
	})

	assert.ErrorIs(t, err, siteerrors.ErrInvalidContractEndDate)
}

func TestSiteService_GetAll_PassesStatusFilter(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	companyID := uuid.New().String()

	var gotStatus string
	repo := &fakeSiteRepository{
		findAllByCompanyFn: func(ctx context.Context, cid, status string) ([]site.Site, error) {
			gotStatus = status
			return []site.Site{
				{ID: uuid.New(), Name: "Tower A", Status: "inactive"},
			}, nil
		},
	}

	svc := site.NewService(db, repo)
	rows, err := svc.GetAll(context.Background(), companyID, "inactive")

	assert.NoError(t, err)
	assert.Equal(t, "inactive", gotStatus)
	assert.Len(t, rows, 1)
	assert.Equal(t, "inactive", rows[0].Status)
}

func TestSiteService_Update_NotFound(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	svc := site.NewService(db, &fakeSiteRepository{})
	_, err = svc.Update(context.Background(), uuid.New().String(), uuid.New().String(), site.UpdateSiteRequest{
		Name:   "Tower A",
		Status: "inactive",
	})

	assert.ErrorIs(t, err, siteerrors.ErrSiteNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSiteService_Delete_InvalidCompany(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := site.NewService(db, &fakeSiteRepository{})
	err = svc.Delete(context.Background(), "not-a-uuid", uuid.New().String())

	assert.ErrorIs(t, err, siteerrors.ErrInvalidCompanyID)
}
