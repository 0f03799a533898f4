package payroll_test

import (
	"testing"

	"github.com/Rohini2302/Sk-enterprises/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func fullMonthStructure() payroll.SalaryStructureRef {
	return payroll.SalaryStructureRef{
		BasicSalary:      22000,
		HRA:              5000,
		DA:               1000,
		SpecialAllowance: 500,
		Conveyance:       800,
		MedicalAllowance: 700,
		OtherAllowances:  0,
		ProvidentFund:    1800,
		ProfessionalTax:  200,
		IncomeTax:        1000,
		OtherDeductions:  0,
	}
}

func TestSummarizeAttendance(t *testing.T) {
	t.Run("counts each status", func(t *testing.T) {
		statuses := []string{
			"present", "present", "present",
			"absent",
			"half-day", "half-day",
		}

		summary := payroll.SummarizeAttendance(statuses)

		assert.Equal(t, 3, summary.PresentDays)
		assert.Equal(t, 1, summary.AbsentDays)
		assert.Equal(t, 2, summary.HalfDays)
		assert.Equal(t, 6, summary.TotalWorkingDays)
	})

	t.Run("late days inflate total without crediting counters", func(t *testing.T) {
		statuses := []string{"present", "late", "late"}

		summary := payroll.SummarizeAttendance(statuses)

		assert.Equal(t, 1, summary.PresentDays)
		assert.Equal(t, 0, summary.AbsentDays)
		assert.Equal(t, 0, summary.HalfDays)
		assert.Equal(t, 3, summary.TotalWorkingDays)
	})

	t.Run("no records falls back to standard month", func(t *testing.T) {
		summary := payroll.SummarizeAttendance(nil)

		assert.Equal(t, 0, summary.PresentDays)
		assert.Equal(t, payroll.StandardWorkingDays, summary.TotalWorkingDays)
	})
}

func TestCalculateBreakdown_FullAttendance(t *testing.T) {
	structure := fullMonthStructure()
	statuses := make([]string, 22)
	for i := range statuses {
		statuses[i] = "present"
	}
	summary := payroll.SummarizeAttendance(statuses)

	breakdown := payroll.CalculateBreakdown(structure, summary, 0)

	assert.InDelta(t, 22000, breakdown.EarnedBasic, 0.0001)
	assert.InDelta(t, 0, breakdown.SalaryLoss, 0.0001)
	assert.InDelta(t, 22000, breakdown.NetBasic, 0.0001)
	assert.InDelta(t, 8000, breakdown.TotalAllowances, 0.0001)
	assert.InDelta(t, 3000, breakdown.TotalDeductions, 0.0001)
	assert.InDelta(t, 27000, breakdown.NetSalary, 0.0001)
}

func TestCalculateBreakdown_MixedAttendance(t *testing.T) {
	structure := fullMonthStructure()

	// 18 present, 2 absent, 2 half-day over a 22 record month.
	statuses := make([]string, 0, 22)
	for i := 0; i < 18; i++ {
		statuses = append(statuses, "present")
	}
	statuses = append(statuses, "absent", "absent", "half-day", "half-day")
	summary := payroll.SummarizeAttendance(statuses)

	breakdown := payroll.CalculateBreakdown(structure, summary, 0)

	dailyRate := 22000.0 / 22.0
	assert.InDelta(t, 18*dailyRate+2*(dailyRate/2), breakdown.EarnedBasic, 0.0001)
	assert.InDelta(t, 2*dailyRate, breakdown.SalaryLoss, 0.0001)
	assert.InDelta(t, breakdown.EarnedBasic-breakdown.SalaryLoss, breakdown.NetBasic, 0.0001)
	assert.InDelta(t, breakdown.NetBasic+8000-3000, breakdown.NetSalary, 0.0001)
}

func TestCalculateBreakdown_ApprovedLeavesDeductDailyRate(t *testing.T) {
	structure := fullMonthStructure()
	statuses := make([]string, 20)
	for i := range statuses {
		statuses[i] = "present"
	}
	summary := payroll.SummarizeAttendance(statuses)

	withoutLeaves := payroll.CalculateBreakdown(structure, summary, 0)
	withLeaves := payroll.CalculateBreakdown(structure, summary, 2)

	dailyRate := 22000.0 / 20.0
	assert.InDelta(t, withoutLeaves.NetSalary-2*dailyRate, withLeaves.NetSalary, 0.0001)
}

func TestCalculateBreakdown_NetBasicFloorsAtZero(t *testing.T) {
	structure := fullMonthStructure()

	// All absences: earned is zero and loss is the full month, so the
	// net basic clamps instead of going negative.
	statuses := make([]string, 22)
	for i := range statuses {
		statuses[i] = "absent"
	}
	summary := payroll.SummarizeAttendance(statuses)

	breakdown := payroll.CalculateBreakdown(structure, summary, 0)

	assert.InDelta(t, 0, breakdown.NetBasic, 0.0001)
	assert.InDelta(t, 8000-3000, breakdown.NetSalary, 0.0001)
}

func TestCalculateBreakdown_NetSalaryFloorsAtZero(t *testing.T) {
	structure := payroll.SalaryStructureRef{
		BasicSalary:     1000,
		ProvidentFund:   5000,
		ProfessionalTax: 200,
	}
	statuses := make([]string, 22)
	for i := range statuses {
		statuses[i] = "absent"
	}
	summary := payroll.SummarizeAttendance(statuses)

	breakdown := payroll.CalculateBreakdown(structure, summary, 0)

	assert.InDelta(t, 0, breakdown.NetSalary, 0.0001)
}

func TestCalculateBreakdown_ZeroBasicReturnsComponentsOnly(t *testing.T) {
	structure := payroll.SalaryStructureRef{
		HRA:           3000,
		ProvidentFund: 500,
	}
	summary := payroll.SummarizeAttendance([]string{"present"})

	breakdown := payroll.CalculateBreakdown(structure, summary, 0)

	assert.InDelta(t, 0, breakdown.EarnedBasic, 0.0001)
	assert.InDelta(t, 3000, breakdown.TotalAllowances, 0.0001)
	assert.InDelta(t, 500, breakdown.TotalDeductions, 0.0001)
	assert.InDelta(t, 0, breakdown.NetSalary, 0.0001)
}

func TestCalculateBreakdown_NoRecordsUsesStandardMonth(t *testing.T) {
	structure := fullMonthStructure()
	summary := payroll.SummarizeAttendance(nil)

	breakdown := payroll.CalculateBreakdown(structure, summary, 0)

	// 22 assumed working days with zero present days: nothing earned,
	// nothing lost, so pay is allowances minus deductions.
	assert.InDelta(t, 0, breakdown.EarnedBasic, 0.0001)
	assert.InDelta(t, 0, breakdown.SalaryLoss, 0.0001)
	assert.InDelta(t, 5000, breakdown.NetSalary, 0.0001)
}

func TestCalculateNetSalary(t *testing.T) {
	structure := fullMonthStructure()
	statuses := make([]string, 22)
	for i := range statuses {
		statuses[i] = "present"
	}
	summary := payroll.SummarizeAttendance(statuses)

	assert.InDelta(t, 27000, payroll.CalculateNetSalary(structure, summary, 0), 0.0001)
	assert.InDelta(t, 0, payroll.CalculateNetSalary(payroll.SalaryStructureRef{}, summary, 0), 0.0001)
}
