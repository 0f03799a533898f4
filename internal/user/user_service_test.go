package user_test

import (
	"context"
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/user"
	usererrors "github.com/Rohini2302/Sk-enterprises/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn                    func(ctx context.Context, u *user.User) error
	findByIDFn                  func(ctx context.Context, companyID, id string) (*user.User, error)
	findByEmailFn               func(ctx context.Context, email string) (*user.User, error)
	findAllByCompanyFn          func(ctx context.Context, companyID string) ([]user.User, error)
	findAllByCompanyWithRolesFn func(ctx context.Context, companyID string) ([]user.UserWithRolesRow, error)
	updateFn                    func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, companyID, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindAllByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindAllByCompanyWithRoles(ctx context.Context, companyID string) ([]user.UserWithRolesRow, error) {
	if f.findAllByCompanyWithRolesFn != nil {
		return f.findAllByCompanyWithRolesFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

type fakeRoleAssigner struct {
	assignFn func(companyID, employeeID, roleName string) error
}

func (f *fakeRoleAssigner) AssignRoleToEmployee(companyID, employeeID, roleName string) error {
	if f.assignFn != nil {
		return f.assignFn(companyID, employeeID, roleName)
	}
	return nil
}

func TestUserService_Create(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	var created *user.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}

	svc := user.NewService(repo, &fakeRoleAssigner{})
	resp, err := svc.Create(context.Background(), companyID, user.CreateUserRequest{
		EmployeeID: employeeID,
		Email:      "ravi@example.com",
		Password:   "longenough",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ravi@example.com", resp.Email)
	assert.True(t, resp.IsActive)
	assert.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("longenough")),
		"stored password must be a bcrypt hash of the request password")
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Email: email}, nil
		},
	}

	svc := user.NewService(repo, &fakeRoleAssigner{})
	_, err := svc.Create(context.Background(), uuid.New().String(), user.CreateUserRequest{
		EmployeeID: uuid.New().String(),
		Email:      "ravi@example.com",
		Password:   "longenough",
	})

	assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
}

func TestUserService_AssignRole(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New()
	userID := uuid.New()

	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*user.User, error) {
			return &user.User{ID: userID, EmployeeID: employeeID}, nil
		},
	}

	var gotRole string
	assigner := &fakeRoleAssigner{
		assignFn: func(cid, eid, roleName string) error {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID.String(), eid)
			gotRole = roleName
			return nil
		},
	}

	svc := user.NewService(repo, assigner)
	err := svc.AssignRole(context.Background(), companyID, userID.String(), "  hr ")

	assert.NoError(t, err)
	assert.Equal(t, "hr", gotRole, "role name is trimmed before assignment")
}

func TestUserService_AssignRole_UnknownRole(t *testing.T) {
	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*user.User, error) {
			return &user.User{ID: uuid.New(), EmployeeID: uuid.New()}, nil
		},
	}
	assigner := &fakeRoleAssigner{
		assignFn: func(cid, eid, roleName string) error {
			return usererrors.ErrRoleNotFound
		},
	}

	svc := user.NewService(repo, assigner)
	err := svc.AssignRole(context.Background(), uuid.New().String(), uuid.New().String(), "superuser")

	assert.ErrorIs(t, err, usererrors.ErrRoleNotFound)
}

func TestUserService_ToggleStatus(t *testing.T) {
	userID := uuid.New()

	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*user.User, error) {
			return &user.User{ID: userID, EmployeeID: uuid.New(), IsActive: true}, nil
		},
	}
	var updated *user.User
	repo.updateFn = func(ctx context.Context, u *user.User) error {
		updated = u
		return nil
	}

	svc := user.NewService(repo, &fakeRoleAssigner{})
	err := svc.ToggleStatus(context.Background(), uuid.New().String(), userID.String(), false)

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.False(t, updated.IsActive)
}

func TestUserService_ToggleStatus_NotFound(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{}, &fakeRoleAssigner{})
	err := svc.ToggleStatus(context.Background(), uuid.New().String(), uuid.New().String(), true)

	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestUserService_ChangePassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, cid, id string) (*user.User, error) {
			return &user.User{ID: uuid.New(), EmployeeID: uuid.New(), Password: string(hashed)}, nil
		},
	}
	var updated *user.User
	repo.updateFn = func(ctx context.Context, u *user.User) error {
		updated = u
		return nil
	}

	svc := user.NewService(repo, &fakeRoleAssigner{})

	err = svc.ChangePassword(context.Background(), uuid.New().String(), uuid.New().String(), "wrong-password", "new-password")
	assert.ErrorIs(t, err, usererrors.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), uuid.New().String(), uuid.New().String(), "old-password", "new-password")
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-password")))
}
