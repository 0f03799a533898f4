package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Rohini2302/Sk-enterprises/internal/shared/contextutil"
	usererrors "github.com/Rohini2302/Sk-enterprises/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context, companyID string) ([]UserResponse, error)
	GetAllWithRoles(ctx context.Context, companyID string) ([]UserWithRolesResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)

	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	AssignRole(ctx context.Context, companyID string, userID string, roleName string) error
	ToggleStatus(ctx context.Context, companyID string, id string, isActive bool) error

	ChangePassword(ctx context.Context, companyID, userID, currentPassword, newPassword string) error
	ForceResetPassword(ctx context.Context, companyID, userID, newPassword string) error
}

// RoleAssigner grants a named role to an employee and reloads the
// tenant's policy so the grant takes effect immediately.
type RoleAssigner interface {
	AssignRoleToEmployee(companyID, employeeID, roleName string) error
}

type service struct {
	repo         Repository
	roleAssigner RoleAssigner
}

func NewService(repo Repository, roleAssigner RoleAssigner) Service {
	return &service{
		repo:         repo,
		roleAssigner: roleAssigner,
	}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetAllWithRoles(ctx context.Context, companyID string) ([]UserWithRolesResponse, error) {
	rows, err := s.repo.FindAllByCompanyWithRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserWithRolesResponse, 0, len(rows))
	for _, row := range rows {
		roles := []string{}
		if strings.TrimSpace(row.RolesRaw) != "" {
			roles = strings.Split(row.RolesRaw, ",")
		}

		resp = append(resp, UserWithRolesResponse{
			ID:             row.ID,
			EmployeeID:     row.EmployeeID,
			EmployeeNumber: row.EmployeeNumber,
			Email:          row.Email,
			FullName:       row.FullName,
			IsActive:       row.IsActive,
			Roles:          roles,
			CreatedAt:      row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, zap.L()).Named("user.service")

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}

	if existing, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return UserResponse{}, usererrors.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		CompanyID:  companyUUID,
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Name:       req.Email,
		Role:       "employee",
		Email:      req.Email,
		Password:   string(hashedPassword),
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("create user failed", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created",
		zap.String("email", u.Email),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*u), nil
}

func (s *service) AssignRole(ctx context.Context, companyID string, userID string, roleName string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := s.roleAssigner.AssignRoleToEmployee(companyID, u.EmployeeID.String(), strings.TrimSpace(roleName)); err != nil {
		return usererrors.ErrRoleNotFound
	}
	return nil
}

func (s *service) ToggleStatus(ctx context.Context, companyID string, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, zap.L()).Named("user.service")

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("update user status failed", zap.Error(err))
		return err
	}

	l.Info("user status changed",
		zap.String("user_id", id),
		zap.Bool("is_active", isActive),
	)
	return nil
}

func (s *service) ChangePassword(ctx context.Context, companyID, userID, currentPassword, newPassword string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) ForceResetPassword(ctx context.Context, companyID, userID, newPassword string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:         u.ID.String(),
		EmployeeID: u.EmployeeID.String(),
		Email:      u.Email,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.Employee != nil {
		resp.FullName = u.Employee.FullName
	}
	return resp
}
