package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Rohini2302/Sk-enterprises/internal/events"
	"github.com/Rohini2302/Sk-enterprises/internal/messaging/kafka"
	payrollerrors "github.com/Rohini2302/Sk-enterprises/internal/payroll/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	AttendanceSummary(ctx context.Context, companyID, employeeID, month string) (AttendanceSummary, error)
	ApprovedLeaveDays(ctx context.Context, companyID, employeeID, month string) (int, error)
	ComputeSalary(ctx context.Context, companyID, employeeID, month string) (float64, error)
	Preview(ctx context.Context, companyID, employeeID, month string) (SalaryPreviewResponse, error)
	Process(ctx context.Context, companyID, employeeID, month string) (PayrollResponse, error)
	ProcessAll(ctx context.Context, companyID, month string) (ProcessAllResponse, error)
	MarkPaid(ctx context.Context, companyID, id string) (PayrollResponse, error)
	GenerateSlip(ctx context.Context, companyID, id string) (SalarySlipResponse, error)
	RequestSlip(ctx context.Context, companyID, actorID, id string) error
	GetAll(ctx context.Context, companyID, month string) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (PayrollResponse, error)
	ListSlips(ctx context.Context, companyID, payrollID string) ([]SalarySlipResponse, error)
	RenderSlipPDF(ctx context.Context, companyID, slipID string) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

// parseMonth validates the "YYYY-MM" token and returns the half-open
// [first of month, first of next month) range for date filtering.
func parseMonth(month string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidMonthFormat
	}
	return from, from.AddDate(0, 1, 0), nil
}

func (s *service) AttendanceSummary(ctx context.Context, companyID, employeeID, month string) (AttendanceSummary, error) {
	from, to, err := parseMonth(month)
	if err != nil {
		return AttendanceSummary{}, err
	}

	statuses, err := s.repo.ListAttendanceStatuses(ctx, companyID, employeeID, from, to)
	if err != nil {
		return AttendanceSummary{}, err
	}

	return SummarizeAttendance(statuses), nil
}

func (s *service) ApprovedLeaveDays(ctx context.Context, companyID, employeeID, month string) (int, error) {
	from, to, err := parseMonth(month)
	if err != nil {
		return 0, err
	}

	return s.repo.CountApprovedLeaves(ctx, companyID, employeeID, from, to)
}

func (s *service) ComputeSalary(ctx context.Context, companyID, employeeID, month string) (float64, error) {
	preview, err := s.Preview(ctx, companyID, employeeID, month)
	if err != nil {
		if errors.Is(err, payrollerrors.ErrStructureNotConfigured) {
			// No structure means no computable salary, not a failure.
			return 0, nil
		}
		return 0, err
	}

	return preview.Breakdown.NetSalary, nil
}

func (s *service) Preview(ctx context.Context, companyID, employeeID, month string) (SalaryPreviewResponse, error) {
	from, to, err := parseMonth(month)
	if err != nil {
		return SalaryPreviewResponse{}, err
	}

	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryPreviewResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	structure, err := s.repo.LatestStructureByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryPreviewResponse{}, payrollerrors.ErrStructureNotConfigured
		}
		return SalaryPreviewResponse{}, err
	}

	statuses, err := s.repo.ListAttendanceStatuses(ctx, companyID, employeeID, from, to)
	if err != nil {
		return SalaryPreviewResponse{}, err
	}

	leaveDays, err := s.repo.CountApprovedLeaves(ctx, companyID, employeeID, from, to)
	if err != nil {
		return SalaryPreviewResponse{}, err
	}

	summary := SummarizeAttendance(statuses)

	return SalaryPreviewResponse{
		EmployeeID:        employeeID,
		Month:             month,
		Attendance:        summary,
		ApprovedLeaveDays: leaveDays,
		Breakdown:         CalculateBreakdown(*structure, summary, leaveDays),
	}, nil
}

func (s *service) Process(ctx context.Context, companyID, employeeID, month string) (PayrollResponse, error) {
	from, to, err := parseMonth(month)
	if err != nil {
		return PayrollResponse{}, err
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Re-read structure, attendance and leaves inside the transaction so
	// the snapshot reflects authoritative state, not a cached list.
	structure, err := qtx.LatestStructureByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrStructureNotConfigured
		}
		return PayrollResponse{}, err
	}

	statuses, err := qtx.ListAttendanceStatuses(ctx, companyID, employeeID, from, to)
	if err != nil {
		return PayrollResponse{}, err
	}

	leaveDays, err := qtx.CountApprovedLeaves(ctx, companyID, employeeID, from, to)
	if err != nil {
		return PayrollResponse{}, err
	}

	summary := SummarizeAttendance(statuses)
	breakdown := CalculateBreakdown(*structure, summary, leaveDays)

	// Replace-by-(employee, month): recomputation never duplicates.
	if err := qtx.DeleteByEmployeeAndMonth(ctx, companyID, employeeID, month); err != nil {
		return PayrollResponse{}, err
	}

	record := &Payroll{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		EmployeeID:  employeeUUID,
		Month:       month,
		BasicSalary: structure.BasicSalary,
		Allowances:  breakdown.TotalAllowances,
		Deductions:  breakdown.TotalDeductions,
		NetSalary:   breakdown.NetSalary,
		PresentDays: summary.PresentDays,
		AbsentDays:  summary.AbsentDays,
		HalfDays:    summary.HalfDays,
		Leaves:      leaveDays,
		Status:      StatusProcessed,
		PaymentDate: "",
	}

	if err := qtx.Create(ctx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) ProcessAll(ctx context.Context, companyID, month string) (ProcessAllResponse, error) {
	if _, _, err := parseMonth(month); err != nil {
		return ProcessAllResponse{}, err
	}

	employeeIDs, err := s.repo.ListEmployeeIDsWithStructure(ctx, companyID)
	if err != nil {
		return ProcessAllResponse{}, err
	}

	log := contextutil.GetLogger(ctx, zap.L()).Named("payroll.process_all")

	resp := ProcessAllResponse{Month: month}
	for _, employeeID := range employeeIDs {
		// Each employee runs in its own transaction; a failure skips the
		// employee and the rest keep going.
		if _, err := s.Process(ctx, companyID, employeeID, month); err != nil {
			resp.SkippedCount++
			log.Warn("payroll processing skipped",
				zap.String("employee_id", employeeID),
				zap.String("month", month),
				zap.Error(err),
			)
			continue
		}
		resp.ProcessedCount++
	}

	return resp, nil
}

func (s *service) MarkPaid(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}

	if record.Status != StatusProcessed {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	record.Status = StatusPaid
	record.PaymentDate = time.Now().UTC().Format("2006-01-02")

	if err := qtx.Update(ctx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GenerateSlip(ctx context.Context, companyID, id string) (SalarySlipResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalarySlipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalarySlipResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return SalarySlipResponse{}, err
	}

	if _, err := qtx.FindEmployeeRef(ctx, companyID, record.EmployeeID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalarySlipResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return SalarySlipResponse{}, err
	}

	structure, err := qtx.LatestStructureByEmployee(ctx, companyID, record.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalarySlipResponse{}, payrollerrors.ErrStructureNotConfigured
		}
		return SalarySlipResponse{}, err
	}

	// Immutable snapshot; the payroll record itself is untouched and
	// repeated calls simply produce more slips.
	slip := &SalarySlip{
		ID:            uuid.New(),
		CompanyID:     record.CompanyID,
		PayrollID:     record.ID,
		EmployeeID:    record.EmployeeID,
		Month:         record.Month,
		BasicSalary:   structure.BasicSalary,
		Allowances:    record.Allowances,
		Deductions:    record.Deductions,
		NetSalary:     record.NetSalary,
		PresentDays:   record.PresentDays,
		AbsentDays:    record.AbsentDays,
		HalfDays:      record.HalfDays,
		Leaves:        record.Leaves,
		GeneratedDate: time.Now().UTC().Format("2006-01-02"),
	}

	if err := qtx.CreateSlip(ctx, slip); err != nil {
		return SalarySlipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalarySlipResponse{}, err
	}

	return mapSlipToResponse(*slip), nil
}

func (s *service) RequestSlip(ctx context.Context, companyID, actorID, id string) error {
	if s.outbox == nil {
		_, err := s.GenerateSlip(ctx, companyID, id)
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payrollerrors.ErrPayrollNotFound
		}
		return err
	}

	event := events.SalarySlipRequestedEvent{
		EventType:   "salary_slip.requested",
		PayrollID:   record.ID.String(),
		CompanyID:   companyID,
		RequestedBy: actorID,
		OccurredAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.SalarySlipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetAll(ctx context.Context, companyID, month string) ([]PayrollResponse, error) {
	if month != "" {
		if _, _, err := parseMonth(month); err != nil {
			return nil, err
		}
	}

	records, err := s.repo.FindAllByCompany(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (PayrollResponse, error) {
	if _, _, err := parseMonth(month); err != nil {
		return PayrollResponse{}, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	record, err := s.repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) ListSlips(ctx context.Context, companyID, payrollID string) ([]SalarySlipResponse, error) {
	slips, err := s.repo.ListSlipsByPayroll(ctx, companyID, payrollID)
	if err != nil {
		return nil, err
	}

	resp := make([]SalarySlipResponse, len(slips))
	for i, slip := range slips {
		resp[i] = mapSlipToResponse(slip)
	}
	return resp, nil
}

func (s *service) RenderSlipPDF(ctx context.Context, companyID, slipID string) ([]byte, error) {
	slip, err := s.repo.FindSlipByIDAndCompany(ctx, companyID, slipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrSalarySlipNotFound
		}
		return nil, err
	}

	employee, err := s.repo.FindEmployeeRef(ctx, companyID, slip.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	return buildSalarySlipPDF(*slip, *employee)
}

func mapToResponse(record Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          record.ID.String(),
		CompanyID:   record.CompanyID.String(),
		EmployeeID:  record.EmployeeID.String(),
		Month:       record.Month,
		BasicSalary: record.BasicSalary,
		Allowances:  record.Allowances,
		Deductions:  record.Deductions,
		NetSalary:   record.NetSalary,
		PresentDays: record.PresentDays,
		AbsentDays:  record.AbsentDays,
		HalfDays:    record.HalfDays,
		Leaves:      record.Leaves,
		Status:      record.Status,
		PaymentDate: record.PaymentDate,
	}

	if record.Employee != nil {
		resp.EmployeeName = record.Employee.FullName
	}

	return resp
}

func mapToListResponse(records []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}

func mapSlipToResponse(slip SalarySlip) SalarySlipResponse {
	return SalarySlipResponse{
		ID:            slip.ID.String(),
		PayrollID:     slip.PayrollID.String(),
		EmployeeID:    slip.EmployeeID.String(),
		Month:         slip.Month,
		BasicSalary:   slip.BasicSalary,
		Allowances:    slip.Allowances,
		Deductions:    slip.Deductions,
		NetSalary:     slip.NetSalary,
		PresentDays:   slip.PresentDays,
		AbsentDays:    slip.AbsentDays,
		HalfDays:      slip.HalfDays,
		Leaves:        slip.Leaves,
		GeneratedDate: slip.GeneratedDate,
	}
}
