package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/payroll"
	payrollerrors "github.com/Rohini2302/Sk-enterprises/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	attendanceSummaryFn     func(ctx context.Context, companyID, employeeID, month string) (payroll.AttendanceSummary, error)
	approvedLeaveDaysFn     func(ctx context.Context, companyID, employeeID, month string) (int, error)
	computeSalaryFn         func(ctx context.Context, companyID, employeeID, month string) (float64, error)
	previewFn               func(ctx context.Context, companyID, employeeID, month string) (payroll.SalaryPreviewResponse, error)
	processFn               func(ctx context.Context, companyID, employeeID, month string) (payroll.PayrollResponse, error)
	processAllFn            func(ctx context.Context, companyID, month string) (payroll.ProcessAllResponse, error)
	markPaidFn              func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	generateSlipFn          func(ctx context.Context, companyID, id string) (payroll.SalarySlipResponse, error)
	requestSlipFn           func(ctx context.Context, companyID, actorID, id string) error
	getAllFn                func(ctx context.Context, companyID, month string) ([]payroll.PayrollResponse, error)
	getByIDFn               func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	getByEmployeeAndMonthFn func(ctx context.Context, companyID, employeeID, month string) (payroll.PayrollResponse, error)
	listSlipsFn             func(ctx context.Context, companyID, payrollID string) ([]payroll.SalarySlipResponse, error)
	renderSlipPDFFn         func(ctx context.Context, companyID, slipID string) ([]byte, error)
}

func (f *fakePayrollService) AttendanceSummary(ctx context.Context, companyID, employeeID, month string) (payroll.AttendanceSummary, error) {
	return f.attendanceSummaryFn(ctx, companyID, employeeID, month)
}

func (f *fakePayrollService) ApprovedLeaveDays(ctx context.Context, companyID, employeeID, month string) (int, error) {
	return f.approvedLeaveDaysFn(ctx, companyID, employeeID, month)
}

func (f *fakePayrollService) ComputeSalary(ctx context.Context, companyID, employeeID, month string) (float64, error) {
	return f.computeSalaryFn(ctx, companyID, employeeID, month)
}

func (f *fakePayrollService) Preview(ctx context.Context, companyID, employeeID, month string) (payroll.SalaryPreviewResponse, error) {
	return f.previewFn(ctx, companyID, employeeID, month)
}

func (f *fakePayrollService) Process(ctx context.Context, companyID, employeeID, month string) (payroll.PayrollResponse, error) {
	return f.processFn(ctx, companyID, employeeID, month)
}

func (f *fakePayrollService) ProcessAll(ctx context.Context, companyID, month string) (payroll.ProcessAllResponse, error) {
	return f.processAllFn(ctx, companyID, month)
}

func (f *fakePayrollService) MarkPaid(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.markPaidFn(ctx, companyID, id)
}

func (f *fakePayrollService) GenerateSlip(ctx context.Context, companyID, id string) (payroll.SalarySlipResponse, error) {
	return f.generateSlipFn(ctx, companyID, id)
}

func (f *fakePayrollService) RequestSlip(ctx context.Context, companyID, actorID, id string) error {
	return f.requestSlipFn(ctx, companyID, actorID, id)
}

func (f *fakePayrollService) GetAll(ctx context.Context, companyID, month string) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, companyID, month)
}

func (f *fakePayrollService) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func (f *fakePayrollService) GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (payroll.PayrollResponse, error) {
	return f.getByEmployeeAndMonthFn(ctx, companyID, employeeID, month)
}

func (f *fakePayrollService) ListSlips(ctx context.Context, companyID, payrollID string) ([]payroll.SalarySlipResponse, error) {
	return f.listSlipsFn(ctx, companyID, payrollID)
}

func (f *fakePayrollService) RenderSlipPDF(ctx context.Context, companyID, slipID string) ([]byte, error) {
	return f.renderSlipPDFFn(ctx, companyID, slipID)
}

func TestPayrollHandler_Process(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		processFn: func(ctx context.Context, cid, eid, month string) (payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, "2026-08", month)
			return payroll.PayrollResponse{
				ID:         uuid.New().String(),
				CompanyID:  cid,
				EmployeeID: eid,
				Month:      month,
				NetSalary:  27000,
				Status:     payroll.StatusProcessed,
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","month":"2026-08"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/process", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)

	h.Process(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Process_NoStructure(t *testing.T) {
	svc := &fakePayrollService{
		processFn: func(ctx context.Context, cid, eid, month string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrStructureNotConfigured
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","month":"2026-08"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/process", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())

	h.Process(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_CONFIGURED", env.Error.Code)
}

func TestPayrollHandler_Process_BadBody(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/process", strings.NewReader(`{"month":"2026-08"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())

	h.Process(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayrollHandler_MarkPaid_InvalidState(t *testing.T) {
	id := uuid.New().String()

	svc := &fakePayrollService{
		markPaidFn: func(ctx context.Context, cid, pid string) (payroll.PayrollResponse, error) {
			assert.Equal(t, id, pid)
			return payroll.PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+id+"/mark-paid", nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	c.Set("company_id", uuid.New().String())

	h.MarkPaid(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestPayrollHandler_Preview_InvalidMonth(t *testing.T) {
	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, cid, eid, month string) (payroll.SalaryPreviewResponse, error) {
			return payroll.SalaryPreviewResponse{}, payrollerrors.ErrInvalidMonthFormat
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/preview?employee_id="+uuid.New().String()+"&month=08-2026", nil)
	c.Set("company_id", uuid.New().String())

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestPayrollHandler_GetAll_EmployeeMonthLookup(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getByEmployeeAndMonthFn: func(ctx context.Context, cid, eid, month string) (payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, "2026-08", month)
			return payroll.PayrollResponse{
				ID:         uuid.New().String(),
				EmployeeID: eid,
				Month:      month,
				Status:     payroll.StatusProcessed,
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls?employee_id="+employeeID+"&month=2026-08", nil)
	c.Set("company_id", companyID)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var record payroll.PayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, employeeID, record.EmployeeID)
}

func TestPayrollHandler_GetAll_Paginates(t *testing.T) {
	companyID := uuid.New().String()

	records := make([]payroll.PayrollResponse, 12)
	for i := range records {
		records[i] = payroll.PayrollResponse{ID: uuid.New().String(), Month: "2026-08", Status: payroll.StatusProcessed}
	}

	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, cid, month string) ([]payroll.PayrollResponse, error) {
			return records, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls?month=2026-08&page=2&page_size=10", nil)
	c.Set("company_id", companyID)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var page []payroll.PayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 2, "second page of twelve records at size ten")
}

func TestPayrollHandler_RequestSlip(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	id := uuid.New().String()

	svc := &fakePayrollService{
		requestSlipFn: func(ctx context.Context, cid, aid, pid string) error {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, id, pid)
			return nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+id+"/slips/request", nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	c.Set("company_id", companyID)
	c.Set("employee_id", actorID)

	h.RequestSlip(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPayrollHandler_DownloadSlipPDF(t *testing.T) {
	slipID := uuid.New().String()

	svc := &fakePayrollService{
		renderSlipPDFFn: func(ctx context.Context, cid, sid string) ([]byte, error) {
			assert.Equal(t, slipID, sid)
			return []byte("%PDF-1.4"), nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/slips/"+slipID+"/pdf", nil)
	c.Params = []gin.Param{{Key: "slipId", Value: slipID}}
	c.Set("company_id", uuid.New().String())

	h.DownloadSlipPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}
