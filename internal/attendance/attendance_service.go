package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceerrors "github.com/Rohini2302/Sk-enterprises/internal/attendance/errors"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
)

func validStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

//go:generate mockgen -source=attendance_service.go -destination=mocks/attendance_service_mock.go -package=mocks

type Service interface {
	Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, companyID, month string) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID, month string) ([]AttendanceResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// Mark records one employee's status for one calendar day. A second call
// for the same employee and day overwrites the earlier status.
func (s *service) Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if !validStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	checkIn, err := parseOptionalTime(req.CheckIn)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}
	checkOut, err := parseOptionalTime(req.CheckOut)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByEmployeeAndDate(ctx, companyID, req.EmployeeID, date)
	switch {
	case err == nil:
		record.Status = req.Status
		if checkIn != nil {
			record.CheckIn = checkIn
		}
		if checkOut != nil {
			record.CheckOut = checkOut
		}
		if req.Notes != nil {
			record.Notes = req.Notes
		}
		if err := qtx.Update(ctx, record); err != nil {
			return AttendanceResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = &Attendance{
			ID:             uuid.New(),
			CompanyID:      companyUUID,
			EmployeeID:     employeeUUID,
			AttendanceDate: date,
			Status:         req.Status,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			Notes:          req.Notes,
		}
		if err := qtx.Create(ctx, record); err != nil {
			return AttendanceResponse{}, err
		}
	default:
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, companyID, month string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, attendanceerrors.ErrInvalidCompanyID
	}

	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID, month string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, attendanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return attendanceerrors.ErrInvalidCompanyID
	}

	err := s.repo.Delete(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}
	return err
}

// monthRange converts a "YYYY-MM" token to a [from, to) interval. An empty
// token means no filtering and yields zero times.
func monthRange(month string) (time.Time, time.Time, error) {
	if month == "" {
		return time.Time{}, time.Time{}, nil
	}
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidMonthFormat
	}
	return from, from.AddDate(0, 1, 0), nil
}

func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapAll(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
