package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Rohini2302/Sk-enterprises/internal/attendance"
	attendanceerrors "github.com/Rohini2302/Sk-enterprises/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	withTxFn                func(tx *sql.Tx) attendance.Repository
	createFn                func(ctx context.Context, record *attendance.Attendance) error
	updateFn                func(ctx context.Context, record *attendance.Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, companyID, employeeID string, date time.Time) (*attendance.Attendance, error)
	findByIDAndCompanyFn    func(ctx context.Context, companyID, id string) (*attendance.Attendance, error)
	findAllByCompanyFn      func(ctx context.Context, companyID string, from, to time.Time) ([]attendance.Attendance, error)
	findAllByEmployeeFn     func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
	deleteFn                func(ctx context.Context, companyID, id string) error
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, record *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, record *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, record)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*attendance.Attendance, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindAllByCompany(ctx context.Context, companyID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindAllByEmployee(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, companyID, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func setupAttendanceServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeAttendanceRepository, attendance.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(db, repo)

	return db, sqlMock, repo, svc
}

func TestAttendanceService_Mark_CreatesNewRecord(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	db, sqlMock, repo, svc := setupAttendanceServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.createFn = func(ctx context.Context, record *attendance.Attendance) error {
		assert.Equal(t, attendance.StatusPresent, record.Status)
		assert.Equal(t, "2026-02-10", record.AttendanceDate.Format("2006-01-02"))
		return nil
	}

	resp, err := svc.Mark(ctx, companyID, attendance.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2026-02-10",
		Status:     attendance.StatusPresent,
	})

	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Mark_OverwritesSameDay(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New()

	db, sqlMock, repo, svc := setupAttendanceServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	existing := &attendance.Attendance{
		ID:             uuid.New(),
		CompanyID:      uuid.MustParse(companyID),
		EmployeeID:     employeeID,
		AttendanceDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:         attendance.StatusPresent,
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, cid, eid string, date time.Time) (*attendance.Attendance, error) {
		return existing, nil
	}

	created := false
	repo.createFn = func(ctx context.Context, record *attendance.Attendance) error {
		created = true
		return nil
	}
	repo.updateFn = func(ctx context.Context, record *attendance.Attendance) error {
		assert.Equal(t, existing.ID, record.ID)
		assert.Equal(t, attendance.StatusHalfDay, record.Status)
		return nil
	}

	resp, err := svc.Mark(ctx, companyID, attendance.MarkAttendanceRequest{
		EmployeeID: employeeID.String(),
		Date:       "2026-02-10",
		Status:     attendance.StatusHalfDay,
	})

	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	assert.False(t, created, "marking the same day twice must update, not insert")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Mark_Validation(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	db, _, _, svc := setupAttendanceServiceTest(t)
	defer db.Close()

	_, err := svc.Mark(ctx, companyID, attendance.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2026-02-10",
		Status:     "vacation",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)

	_, err = svc.Mark(ctx, companyID, attendance.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "10/02/2026",
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)

	_, err = svc.Mark(ctx, "not-a-uuid", attendance.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2026-02-10",
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidCompanyID)
}

func TestAttendanceService_GetByEmployee_MonthWindow(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	db, _, repo, svc := setupAttendanceServiceTest(t)
	defer db.Close()

	repo.findAllByEmployeeFn = func(ctx context.Context, cid, eid string, from, to time.Time) ([]attendance.Attendance, error) {
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), to)
		return []attendance.Attendance{
			{ID: uuid.New(), AttendanceDate: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate},
		}, nil
	}

	rows, err := svc.GetByEmployee(ctx, companyID, employeeID, "2026-02")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, attendance.StatusLate, rows[0].Status)
}

func TestAttendanceService_GetByEmployee_BadMonth(t *testing.T) {
	db, _, _, svc := setupAttendanceServiceTest(t)
	defer db.Close()

	_, err := svc.GetByEmployee(context.Background(), uuid.New().String(), uuid.New().String(), "February")

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonthFormat)
}
