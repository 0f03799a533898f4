package performance

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	performanceerrors "github.com/Rohini2302/Sk-enterprises/internal/performance/errors"
)

//go:generate mockgen -source=performance_service.go -destination=mocks/performance_service_mock.go -package=mocks

type Service interface {
	Create(ctx context.Context, companyID string, req CreateReviewRequest) (ReviewResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ReviewResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]ReviewResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ReviewResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateReviewRequest) (ReviewResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidEmployeeID
	}

	row := &Review{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Period:     req.Period,
		Rating:     req.Rating,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return ReviewResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ReviewResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]ReviewResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, performanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, performanceerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ReviewResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidCompanyID
	}

	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ReviewResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateReviewRequest) (ReviewResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ReviewResponse{}, performanceerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ReviewResponse{}, err
	}

	row.Period = req.Period
	row.Rating = req.Rating
	row.Notes = req.Notes

	if err := qtx.Update(ctx, row); err != nil {
		return ReviewResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReviewResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return performanceerrors.ErrInvalidCompanyID
	}
	return s.repo.Delete(ctx, companyID, id)
}

func mapAll(rows []Review) []ReviewResponse {
	res := make([]ReviewResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func mapToResponse(r Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         r.ID.String(),
		EmployeeID: r.EmployeeID.String(),
		Period:     r.Period,
		Rating:     r.Rating,
		Notes:      r.Notes,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName
	}
	return resp
}
