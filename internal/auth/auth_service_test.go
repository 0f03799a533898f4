package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/auth"
	autherrors "github.com/Rohini2302/Sk-enterprises/internal/auth/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/domain"
	"github.com/Rohini2302/Sk-enterprises/internal/employee"
	employeeerrors "github.com/Rohini2302/Sk-enterprises/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	createFn     func(ctx context.Context, user *auth.User) error
	getByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRBACService struct {
	loadedCompanies []string
}

func (f *fakeRBACService) LoadCompanyPolicy(companyID string) error {
	f.loadedCompanies = append(f.loadedCompanies, companyID)
	return nil
}

func (f *fakeRBACService) Enforce(req domain.EnforceRequest) (bool, error) { return true, nil }

func (f *fakeRBACService) AssignRoleToEmployee(companyID, employeeID, roleName string) error {
	return nil
}

type fakeEmployeeRepository struct {
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID, status string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindOptionsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

func activeUser(t *testing.T, password string) *auth.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	employeeID := uuid.New()
	return &auth.User{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		EmployeeID: &employeeID,
		Name:       "Asha Kulkarni",
		Email:      "asha@example.com",
		Password:   string(hashed),
		Role:       "hr",
		IsActive:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := activeUser(t, "s3cret-pass")
	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			assert.Equal(t, "asha@example.com", email)
			return user, nil
		},
	}
	rbacSvc := &fakeRBACService{}

	svc := auth.NewService(repo, rbacSvc, &fakeEmployeeRepository{})
	access, refresh, resp, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user.ID.String(), resp.ID)
	assert.Equal(t, "hr", resp.Role)
	assert.Equal(t, []string{user.CompanyID.String()}, rbacSvc.loadedCompanies,
		"login warms the tenant policy")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := activeUser(t, "s3cret-pass")
	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
	}

	svc := auth.NewService(repo, &fakeRBACService{}, &fakeEmployeeRepository{})
	_, _, _, err := svc.Login(context.Background(), "asha@example.com", "wrong")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := auth.NewService(&fakeAuthRepository{}, &fakeRBACService{}, &fakeEmployeeRepository{})
	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := activeUser(t, "s3cret-pass")
	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}

	svc := auth.NewService(repo, &fakeRBACService{}, &fakeEmployeeRepository{})
	_, refresh, _, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.Email, resp.Email)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := auth.NewService(&fakeAuthRepository{}, &fakeRBACService{}, &fakeEmployeeRepository{})
	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestAuthService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	companyID := uuid.New()
	employeeID := uuid.New()

	emplRepo := &fakeEmployeeRepository{
		findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			assert.Equal(t, companyID.String(), cid)
			assert.Equal(t, employeeID.String(), id)
			return &employee.Employee{ID: employeeID, CompanyID: companyID}, nil
		},
	}

	var created *auth.User
	repo := &fakeAuthRepository{
		createFn: func(ctx context.Context, user *auth.User) error {
			created = user
			return nil
		},
	}

	svc := auth.NewService(repo, &fakeRBACService{}, emplRepo)
	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		CompanyID:  companyID.String(),
		EmployeeID: employeeID.String(),
		Email:      "new@example.com",
		Name:       "New Hire",
		Password:   "s3cret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "employee", resp.Role, "registered accounts default to the employee role")
	assert.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
}

func TestAuthService_Register_UnknownEmployee(t *testing.T) {
	svc := auth.NewService(&fakeAuthRepository{}, &fakeRBACService{}, &fakeEmployeeRepository{})
	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		CompanyID:  uuid.New().String(),
		EmployeeID: uuid.New().String(),
		Email:      "new@example.com",
		Name:       "New Hire",
		Password:   "s3cret-pass",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
