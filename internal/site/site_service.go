package site

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	siteerrors "github.com/Rohini2302/Sk-enterprises/internal/site/errors"
)

//go:generate mockgen -source=site_service.go -destination=mocks/site_service_mock.go -package=mocks

type Service interface {
	Create(ctx context.Context, companyID string, req CreateSiteRequest) (SiteResponse, error)
	GetAll(ctx context.Context, companyID, status string) ([]SiteResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SiteResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateSiteRequest) (SiteResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SiteResponse{}, siteerrors.ErrInvalidCompanyID
	}
	contractEnd, err := parseOptionalDate(req.ContractEndDate)
	if err != nil {
		return SiteResponse{}, siteerrors.ErrInvalidContractEndDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SiteResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Site{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		Name:            req.Name,
		ClientName:      req.ClientName,
		Location:        req.Location,
		AreaSqft:        req.AreaSqft,
		ManagerName:     req.ManagerName,
		ManagerPhone:    req.ManagerPhone,
		SupervisorName:  req.SupervisorName,
		SupervisorPhone: req.SupervisorPhone,
		ContractValue:   req.ContractValue,
		ContractEndDate: contractEnd,
		Services:        req.Services,
		Status:          "active",
	}

	if err := qtx.Create(ctx, row); err != nil {
		return SiteResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SiteResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID, status string) ([]SiteResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, siteerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	res := make([]SiteResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (SiteResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return SiteResponse{}, siteerrors.ErrInvalidCompanyID
	}

	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SiteResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateSiteRequest) (SiteResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return SiteResponse{}, siteerrors.ErrInvalidCompanyID
	}
	contractEnd, err := parseOptionalDate(req.ContractEndDate)
	if err != nil {
		return SiteResponse{}, siteerrors.ErrInvalidContractEndDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SiteResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SiteResponse{}, err
	}

	row.Name = req.Name
	row.ClientName = req.ClientName
	row.Location = req.Location
	row.AreaSqft = req.AreaSqft
	row.ManagerName = req.ManagerName
	row.ManagerPhone = req.ManagerPhone
	row.SupervisorName = req.SupervisorName
	row.SupervisorPhone = req.SupervisorPhone
	row.ContractValue = req.ContractValue
	row.ContractEndDate = contractEnd
	row.Services = req.Services
	row.Status = req.Status

	if err := qtx.Update(ctx, row); err != nil {
		return SiteResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SiteResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return siteerrors.ErrInvalidCompanyID
	}
	return s.repo.Delete(ctx, companyID, id)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(s Site) SiteResponse {
	resp := SiteResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		ClientName:      s.ClientName,
		Location:        s.Location,
		AreaSqft:        s.AreaSqft,
		ManagerName:     s.ManagerName,
		ManagerPhone:    s.ManagerPhone,
		SupervisorName:  s.SupervisorName,
		SupervisorPhone: s.SupervisorPhone,
		ContractValue:   s.ContractValue,
		Services:        s.Services,
		Status:          s.Status,
	}
	if s.ContractEndDate != nil {
		resp.ContractEndDate = s.ContractEndDate.Format("2006-01-02")
	}
	return resp
}
