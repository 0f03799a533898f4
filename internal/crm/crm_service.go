package crm

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	crmerrors "github.com/Rohini2302/Sk-enterprises/internal/crm/errors"
)

const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusProposal    = "proposal"
	LeadStatusNegotiation = "negotiation"
	LeadStatusClosedWon   = "closed-won"
	LeadStatusClosedLost  = "closed-lost"
)

func validLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusProposal, LeadStatusNegotiation,
		LeadStatusClosedWon, LeadStatusClosedLost:
		return true
	}
	return false
}

func closedLeadStatus(status string) bool {
	return status == LeadStatusClosedWon || status == LeadStatusClosedLost
}

//go:generate mockgen -source=crm_service.go -destination=mocks/crm_service_mock.go -package=mocks

type Service interface {
	CreateClient(ctx context.Context, companyID string, req CreateClientRequest) (ClientResponse, error)
	GetAllClients(ctx context.Context, companyID, status string) ([]ClientResponse, error)
	GetClientByID(ctx context.Context, companyID, id string) (ClientResponse, error)
	UpdateClient(ctx context.Context, companyID, id string, req UpdateClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, companyID, id string) error

	CreateLead(ctx context.Context, companyID string, req CreateLeadRequest) (LeadResponse, error)
	GetAllLeads(ctx context.Context, companyID, status string) ([]LeadResponse, error)
	GetLeadByID(ctx context.Context, companyID, id string) (LeadResponse, error)
	UpdateLead(ctx context.Context, companyID, id string, req UpdateLeadRequest) (LeadResponse, error)
	UpdateLeadStatus(ctx context.Context, companyID, id string, req UpdateLeadStatusRequest) (LeadResponse, error)
	DeleteLead(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) CreateClient(ctx context.Context, companyID string, req CreateClientRequest) (ClientResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ClientResponse{}, crmerrors.ErrInvalidCompanyID
	}

	row := &Client{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        "active",
	}

	if err := s.repo.CreateClient(ctx, row); err != nil {
		return ClientResponse{}, err
	}
	return mapClient(*row), nil
}

func (s *service) GetAllClients(ctx context.Context, companyID, status string) ([]ClientResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, crmerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.FindAllClientsByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	res := make([]ClientResponse, len(rows))
	for i, r := range rows {
		res[i] = mapClient(r)
	}
	return res, nil
}

func (s *service) GetClientByID(ctx context.Context, companyID, id string) (ClientResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ClientResponse{}, crmerrors.ErrInvalidCompanyID
	}

	row, err := s.repo.FindClientByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ClientResponse{}, err
	}
	return mapClient(*row), nil
}

func (s *service) UpdateClient(ctx context.Context, companyID, id string, req UpdateClientRequest) (ClientResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ClientResponse{}, crmerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindClientByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ClientResponse{}, err
	}

	row.Name = req.Name
	row.ContactPerson = req.ContactPerson
	row.Email = req.Email
	row.Phone = req.Phone
	row.Address = req.Address
	row.Status = req.Status

	if err := qtx.UpdateClient(ctx, row); err != nil {
		return ClientResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}
	return mapClient(*row), nil
}

func (s *service) DeleteClient(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return crmerrors.ErrInvalidCompanyID
	}
	return s.repo.DeleteClient(ctx, companyID, id)
}

func (s *service) CreateLead(ctx context.Context, companyID string, req CreateLeadRequest) (LeadResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeadResponse{}, crmerrors.ErrInvalidCompanyID
	}

	row := &Lead{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		Name:           req.Name,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		Source:         req.Source,
		EstimatedValue: req.EstimatedValue,
		Notes:          req.Notes,
		Status:         LeadStatusNew,
	}

	if err := s.repo.CreateLead(ctx, row); err != nil {
		return LeadResponse{}, err
	}
	return mapLead(*row), nil
}

func (s *service) GetAllLeads(ctx context.Context, companyID, status string) ([]LeadResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, crmerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.FindAllLeadsByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	res := make([]LeadResponse, len(rows))
	for i, r := range rows {
		res[i] = mapLead(r)
	}
	return res, nil
}

func (s *service) GetLeadByID(ctx context.Context, companyID, id string) (LeadResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return LeadResponse{}, crmerrors.ErrInvalidCompanyID
	}

	row, err := s.repo.FindLeadByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeadResponse{}, err
	}
	return mapLead(*row), nil
}

func (s *service) UpdateLead(ctx context.Context, companyID, id string, req UpdateLeadRequest) (LeadResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return LeadResponse{}, crmerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeadResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindLeadByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeadResponse{}, err
	}

	row.Name = req.Name
	row.ContactPerson = req.ContactPerson
	row.Email = req.Email
	row.Phone = req.Phone
	row.Source = req.Source
	row.EstimatedValue = req.EstimatedValue
	row.Notes = req.Notes

	if err := qtx.UpdateLead(ctx, row); err != nil {
		return LeadResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeadResponse{}, err
	}
	return mapLead(*row), nil
}

// UpdateLeadStatus moves a lead along the pipeline. Closed leads are
// terminal either way.
func (s *service) UpdateLeadStatus(ctx context.Context, companyID, id string, req UpdateLeadStatusRequest) (LeadResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return LeadResponse{}, crmerrors.ErrInvalidCompanyID
	}
	if !validLeadStatus(req.Status) {
		return LeadResponse{}, crmerrors.ErrInvalidLeadStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeadResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindLeadByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeadResponse{}, err
	}
	if closedLeadStatus(row.Status) {
		return LeadResponse{}, crmerrors.ErrLeadAlreadyClosed
	}

	row.Status = req.Status

	if err := qtx.UpdateLead(ctx, row); err != nil {
		return LeadResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeadResponse{}, err
	}
	return mapLead(*row), nil
}

func (s *service) DeleteLead(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return crmerrors.ErrInvalidCompanyID
	}
	return s.repo.DeleteLead(ctx, companyID, id)
}

func mapClient(c Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Status:        c.Status,
	}
}

func mapLead(l Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID.String(),
		Name:           l.Name,
		ContactPerson:  l.ContactPerson,
		Email:          l.Email,
		Phone:          l.Phone,
		Source:         l.Source,
		EstimatedValue: l.EstimatedValue,
		Notes:          l.Notes,
		Status:         l.Status,
	}
}
