package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/employee"
	employeeerrors "github.com/Rohini2302/Sk-enterprises/internal/employee/errors"
	"github.com/Rohini2302/Sk-enterprises/internal/events"
	"github.com/Rohini2302/Sk-enterprises/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn               func(tx *sql.Tx) employee.Repository
	createFn               func(ctx context.Context, empl *employee.Employee) error
	updateFn               func(ctx context.Context, empl *employee.Employee) error
	findByIDAndCompanyFn   func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	findAllByCompanyFn     func(ctx context.Context, companyID, status string) ([]employee.Employee, error)
	findOptionsByCompanyFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
	deleteFn               func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID, status string) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, status)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindOptionsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findOptionsByCompanyFn != nil {
		return f.findOptionsByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

type fakeCounterRepository struct {
	nextValue int64
	calls     int
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.calls++
	f.nextValue++
	return f.nextValue, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func TestEmployeeService_Create_GeneratesNumber(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{nextValue: 6}
	svc := employee.NewService(db, repo, counterRepo, nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
		assert.Equal(t, "EMP007", empl.EmployeeNumber)
		assert.Equal(t, "active", empl.Status)
		return nil
	}

	resp, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		JoinDate: "2026-01-05",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMP007", resp.EmployeeNumber)
	assert.Equal(t, 1, counterRepo.calls)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_KeepsExplicitNumber(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	svc := employee.NewService(db, repo, counterRepo, nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	resp, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
		FullName:       "Ravi Kumar",
		Email:          "ravi@example.com",
		JoinDate:       "2026-01-05",
		EmployeeNumber: "EMP999",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMP999", resp.EmployeeNumber)
	assert.Zero(t, counterRepo.calls, "an explicit number must not consume the counter")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_InvalidJoinDate(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := employee.NewService(db, &fakeEmployeeRepository{}, &fakeCounterRepository{}, nil)

	_, err = svc.Create(context.Background(), uuid.New().String(), employee.CreateEmployeeRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		JoinDate: "05-01-2026",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoinDate)
}

func TestEmployeeService_Create_EmitsLifecycleEvent(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepository{}
	var captured kafka.OutboxEvent
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			captured = event
			return nil
		},
	}
	svc := employee.NewServiceWithOutbox(db, repo, &fakeCounterRepository{}, outbox, nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	resp, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		JoinDate: "2026-01-05",
	})

	assert.NoError(t, err)
	assert.Equal(t, events.EmployeeCreatedTopic, captured.Topic)
	assert.Equal(t, "employee_created", captured.EventType)
	assert.Equal(t, resp.ID, captured.AggregateID)
	assert.Equal(t, kafka.OutboxStatusPending, captured.Status)

	var event events.EmployeeCreatedEvent
	assert.NoError(t, json.Unmarshal(captured.Payload, &event))
	assert.Equal(t, resp.ID, event.EmployeeID)
	assert.Equal(t, companyID, event.CompanyID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_CacheHitSkipsRepo(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	cached := []employee.EmployeeResponse{
		{ID: uuid.New().String(), FullName: "Ravi Kumar", EmployeeNumber: "EMP001", Status: "active"},
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(employee.GetEmployeeOptionsKey(companyID)).SetVal(string(payload))

	repoCalled := false
	repo := &fakeEmployeeRepository{
		findOptionsByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
			repoCalled = true
			return nil, nil
		},
	}
	svc := employee.NewService(db, repo, &fakeCounterRepository{}, rdb)

	options, err := svc.GetOptions(ctx, companyID)

	assert.NoError(t, err)
	assert.Equal(t, cached, options)
	assert.False(t, repoCalled, "a cache hit must not reach the database")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_NoRedisHitsRepo(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepository{
		findOptionsByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: uuid.New(), FullName: "Ravi Kumar", EmployeeNumber: "EMP001", Status: "active"},
			}, nil
		},
	}
	svc := employee.NewService(db, repo, &fakeCounterRepository{}, nil)

	options, err := svc.GetOptions(ctx, companyID)

	assert.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, "EMP001", options[0].EmployeeNumber)
}
