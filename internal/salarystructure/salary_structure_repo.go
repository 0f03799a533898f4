package salarystructure

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	structureerrors "github.com/Rohini2302/Sk-enterprises/internal/salarystructure/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/tenant"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mocks/salary_structure_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, structure *SalaryStructure) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryStructure, error)
	FindLatestByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructure, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error)
	Update(ctx context.Context, structure *SalaryStructure) error
	Delete(ctx context.Context, companyID, id string) error
	ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *sql.Tx) Repository {
	conn, err := gorm.Open(r.db.Dialector, &gorm.Config{ConnPool: tx})
	if err != nil {
		return r
	}
	return &gormRepository{db: conn}
}

func (r *gormRepository) Create(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *gormRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("id = ?", id).
		First(&structure).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, structureerrors.ErrStructureNotFound
	}
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *gormRepository) FindLatestByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		First(&structure).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, structureerrors.ErrStructureNotFound
	}
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *gormRepository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Order("created_at DESC").
		Find(&structures).Error
	if err != nil {
		return nil, err
	}
	return structures, nil
}

func (r *gormRepository) Update(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(structure.CompanyID.String())).
		Where("id = ?", structure.ID).
		Select("basic_salary", "hra", "da", "special_allowance", "conveyance",
			"medical_allowance", "other_allowances", "provident_fund",
			"professional_tax", "income_tax", "other_deductions", "updated_at").
		Updates(structure).Error
}

func (r *gormRepository) Delete(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&SalaryStructure{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return structureerrors.ErrStructureNotFound
	}
	return nil
}

func (r *gormRepository) ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
