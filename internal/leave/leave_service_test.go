package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Rohini2302/Sk-enterprises/internal/leave"
	leaveerrors "github.com/Rohini2302/Sk-enterprises/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn                 func(tx *sql.Tx) leave.Repository
	createFn                 func(ctx context.Context, row *leave.Leave) error
	updateFn                 func(ctx context.Context, row *leave.Leave) error
	findByIDAndCompanyFn     func(ctx context.Context, companyID, id string) (*leave.Leave, error)
	findAllByCompanyFn       func(ctx context.Context, companyID, status string) ([]leave.Leave, error)
	findAllByEmployeeFn      func(ctx context.Context, companyID, employeeID string) ([]leave.Leave, error)
	findApprovedStartingInFn func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]leave.Leave, error)
	deleteFn                 func(ctx context.Context, companyID, id string) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, row *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, row *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*leave.Leave, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindAllByCompany(ctx context.Context, companyID, status string) ([]leave.Leave, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, status)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]leave.Leave, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindApprovedStartingIn(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	if f.findApprovedStartingInFn != nil {
		return f.findApprovedStartingInFn(ctx, companyID, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func setupLeaveServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeLeaveRepository, leave.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	svc := leave.NewService(db, repo)

	return db, sqlMock, repo, svc
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	db, _, repo, svc := setupLeaveServiceTest(t)
	defer db.Close()

	repo.createFn = func(ctx context.Context, row *leave.Leave) error {
		assert.Equal(t, leave.StatusPending, row.Status)
		assert.Equal(t, "casual", row.LeaveType)
		return nil
	}

	resp, err := svc.Create(ctx, companyID, leave.CreateLeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "casual",
		StartDate:  "2026-02-10",
		EndDate:    "2026-02-12",
		Reason:     "family function",
	})

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Nil(t, resp.ApprovedBy)
}

func TestLeaveService_Create_EndBeforeStart(t *testing.T) {
	db, _, _, svc := setupLeaveServiceTest(t)
	defer db.Close()

	_, err := svc.Create(context.Background(), uuid.New().String(), leave.CreateLeaveRequest{
		EmployeeID: uuid.New().String(),
		LeaveType:  "sick",
		StartDate:  "2026-02-12",
		EndDate:    "2026-02-10",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	leaveID := uuid.New().String()

	t.Run("pending becomes approved", func(t *testing.T) {
		db, sqlMock, repo, svc := setupLeaveServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:         uuid.MustParse(id),
				CompanyID:  uuid.MustParse(cid),
				EmployeeID: uuid.New(),
				Status:     leave.StatusPending,
			}, nil
		}

		resp, err := svc.Approve(ctx, companyID, actorID, leaveID)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, actorID, *resp.ApprovedBy)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("approved cannot be decided again", func(t *testing.T) {
		db, sqlMock, repo, svc := setupLeaveServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:        uuid.MustParse(id),
				CompanyID: uuid.MustParse(cid),
				Status:    leave.StatusApproved,
			}, nil
		}

		_, err := svc.Approve(ctx, companyID, actorID, leaveID)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	leaveID := uuid.New().String()

	t.Run("requires a reason", func(t *testing.T) {
		db, _, _, svc := setupLeaveServiceTest(t)
		defer db.Close()

		_, err := svc.Reject(ctx, companyID, actorID, leaveID, leave.RejectLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("pending becomes rejected with reason", func(t *testing.T) {
		db, sqlMock, repo, svc := setupLeaveServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:        uuid.MustParse(id),
				CompanyID: uuid.MustParse(cid),
				Status:    leave.StatusPending,
			}, nil
		}
		repo.updateFn = func(ctx context.Context, row *leave.Leave) error {
			assert.Equal(t, leave.StatusRejected, row.Status)
			assert.NotNil(t, row.RejectionReason)
			return nil
		}

		resp, err := svc.Reject(ctx, companyID, actorID, leaveID, leave.RejectLeaveRequest{
			RejectionReason: "short staffed that week",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "short staffed that week", *resp.RejectionReason)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
