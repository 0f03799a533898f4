package user

import (
	"context"

	"github.com/Rohini2302/Sk-enterprises/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, companyID string, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]User, error)
	FindAllByCompanyWithRoles(ctx context.Context, companyID string) ([]UserWithRolesRow, error)
	Update(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, companyID string, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]User, error) {
	var users []User

	err := r.db.WithContext(ctx).
		Joins("Employee").
		Scopes(tenant.Scope(companyID)).
		Find(&users).Error

	return users, err
}

func (r *repository) FindAllByCompanyWithRoles(ctx context.Context, companyID string) ([]UserWithRolesRow, error) {
	var rows []UserWithRolesRow

	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`
			u.id,
			u.employee_id,
			e.employee_number,
			u.email,
			e.full_name,
			u.is_active,
			u.created_at,
			COALESCE(STRING_AGG(roles.name, ','), '') AS roles_raw`).
		Joins("LEFT JOIN employees e ON e.id = u.employee_id").
		Joins("LEFT JOIN employee_roles er ON er.employee_id = u.employee_id").
		Joins("LEFT JOIN roles ON roles.id = er.role_id AND roles.company_id = u.company_id").
		Where("u.company_id = ?", companyID).
		Where("u.deleted_at IS NULL").
		Group("u.id, u.employee_id, e.employee_number, u.email, e.full_name, u.is_active, u.created_at").
		Order("u.email ASC").
		Scan(&rows).Error

	return rows, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
