package shift

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	shifterrors "github.com/Rohini2302/Sk-enterprises/internal/shift/errors"
)

//go:generate mockgen -source=shift_service.go -destination=mocks/shift_service_mock.go -package=mocks

type Service interface {
	Create(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ShiftResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ShiftResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidCompanyID
	}
	if err := validateClock(req.StartTime); err != nil {
		return ShiftResponse{}, err
	}
	if err := validateClock(req.EndTime); err != nil {
		return ShiftResponse{}, err
	}

	row := &Shift{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		EmployeeIDs: strings.Join(req.EmployeeIDs, ","),
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ShiftResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, shifterrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	res := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ShiftResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidCompanyID
	}

	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidCompanyID
	}
	if err := validateClock(req.StartTime); err != nil {
		return ShiftResponse{}, err
	}
	if err := validateClock(req.EndTime); err != nil {
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ShiftResponse{}, err
	}

	row.Name = req.Name
	row.StartTime = req.StartTime
	row.EndTime = req.EndTime
	row.EmployeeIDs = strings.Join(req.EmployeeIDs, ",")

	if err := qtx.Update(ctx, row); err != nil {
		return ShiftResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return shifterrors.ErrInvalidCompanyID
	}
	return s.repo.Delete(ctx, companyID, id)
}

func validateClock(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return shifterrors.ErrInvalidTimeFormat
	}
	return nil
}

func mapToResponse(sh Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:          sh.ID.String(),
		Name:        sh.Name,
		StartTime:   sh.StartTime,
		EndTime:     sh.EndTime,
		EmployeeIDs: []string{},
	}
	if sh.EmployeeIDs != "" {
		resp.EmployeeIDs = strings.Split(sh.EmployeeIDs, ",")
	}
	return resp
}
