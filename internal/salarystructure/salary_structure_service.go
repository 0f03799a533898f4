package salarystructure

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	structureerrors "github.com/Rohini2302/Sk-enterprises/internal/salarystructure/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/shared/contextutil"
)

//go:generate mockgen -source=salary_structure_service.go -destination=mocks/salary_structure_service_mock.go -package=mocks

type Service interface {
	Create(ctx context.Context, companyID string, req CreateSalaryStructureRequest) (*SalaryStructureResponse, error)
	GetAll(ctx context.Context, companyID string) ([]SalaryStructureResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*SalaryStructureResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructureResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateSalaryStructureRequest) (*SalaryStructureResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	// SeedDefault creates a zeroed structure for a newly onboarded employee
	// unless one already exists. Returns false when the seed was skipped.
	SeedDefault(ctx context.Context, companyID, employeeID string) (bool, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateSalaryStructureRequest) (*SalaryStructureResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, structureerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, structureerrors.ErrInvalidEmployeeID
	}

	structure := &SalaryStructure{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		EmployeeID:       employeeUUID,
		BasicSalary:      req.BasicSalary,
		HRA:              req.HRA,
		DA:               req.DA,
		SpecialAllowance: req.SpecialAllowance,
		Conveyance:       req.Conveyance,
		MedicalAllowance: req.MedicalAllowance,
		OtherAllowances:  req.OtherAllowances,
		ProvidentFund:    req.ProvidentFund,
		ProfessionalTax:  req.ProfessionalTax,
		IncomeTax:        req.IncomeTax,
		OtherDeductions:  req.OtherDeductions,
	}

	if err := s.repo.Create(ctx, structure); err != nil {
		return nil, mapRepositoryError(err)
	}

	return toResponse(structure), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]SalaryStructureResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, structureerrors.ErrInvalidCompanyID
	}

	structures, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]SalaryStructureResponse, 0, len(structures))
	for i := range structures {
		responses = append(responses, *toResponse(&structures[i]))
	}
	return responses, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*SalaryStructureResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, structureerrors.ErrInvalidCompanyID
	}

	structure, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(structure), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructureResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, structureerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, structureerrors.ErrInvalidEmployeeID
	}

	structure, err := s.repo.FindLatestByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponse(structure), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateSalaryStructureRequest) (*SalaryStructureResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, structureerrors.ErrInvalidCompanyID
	}

	structure, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	structure.BasicSalary = req.BasicSalary
	structure.HRA = req.HRA
	structure.DA = req.DA
	structure.SpecialAllowance = req.SpecialAllowance
	structure.Conveyance = req.Conveyance
	structure.MedicalAllowance = req.MedicalAllowance
	structure.OtherAllowances = req.OtherAllowances
	structure.ProvidentFund = req.ProvidentFund
	structure.ProfessionalTax = req.ProfessionalTax
	structure.IncomeTax = req.IncomeTax
	structure.OtherDeductions = req.OtherDeductions

	if err := s.repo.Update(ctx, structure); err != nil {
		return nil, err
	}
	return toResponse(structure), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return structureerrors.ErrInvalidCompanyID
	}
	return s.repo.Delete(ctx, companyID, id)
}

func (s *service) SeedDefault(ctx context.Context, companyID, employeeID string) (bool, error) {
	log := contextutil.GetLogger(ctx, zap.L()).Named("salarystructure.seed")

	if _, err := uuid.Parse(companyID); err != nil {
		return false, structureerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return false, structureerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	exists, err := txRepo.ExistsForEmployee(ctx, companyID, employeeID)
	if err != nil {
		return false, err
	}
	if exists {
		log.Info("salary structure already present, skipping seed",
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
		)
		return false, nil
	}

	structure := &SalaryStructure{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: uuid.MustParse(employeeID),
	}
	if err := txRepo.Create(ctx, structure); err != nil {
		return false, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	log.Info("seeded default salary structure",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("structure_id", structure.ID.String()),
	)
	return true, nil
}

func toResponse(structure *SalaryStructure) *SalaryStructureResponse {
	resp := &SalaryStructureResponse{
		ID:               structure.ID.String(),
		EmployeeID:       structure.EmployeeID.String(),
		BasicSalary:      structure.BasicSalary,
		HRA:              structure.HRA,
		DA:               structure.DA,
		SpecialAllowance: structure.SpecialAllowance,
		Conveyance:       structure.Conveyance,
		MedicalAllowance: structure.MedicalAllowance,
		OtherAllowances:  structure.OtherAllowances,
		ProvidentFund:    structure.ProvidentFund,
		ProfessionalTax:  structure.ProfessionalTax,
		IncomeTax:        structure.IncomeTax,
		OtherDeductions:  structure.OtherDeductions,
	}
	resp.TotalAllowances = structure.HRA + structure.DA + structure.SpecialAllowance +
		structure.Conveyance + structure.MedicalAllowance + structure.OtherAllowances
	resp.TotalDeductions = structure.ProvidentFund + structure.ProfessionalTax +
		structure.IncomeTax + structure.OtherDeductions
	resp.TotalCTC = structure.BasicSalary + resp.TotalAllowances

	if structure.Employee != nil {
		resp.EmployeeName = structure.Employee.FullName
	}
	return resp
}
