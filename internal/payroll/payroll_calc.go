package payroll

const (
	StatusPending   = "pending" // reserved for scheduled-but-not-run; never written today
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

// Attendance status tokens as stored on attendance_records.
const (
	attendancePresent = "present"
	attendanceAbsent  = "absent"
	attendanceHalfDay = "half-day"
)

// StandardWorkingDays is the assumed month length when an employee has no
// attendance records at all, so the daily rate never divides by zero.
const StandardWorkingDays = 22

type AttendanceSummary struct {
	PresentDays      int `json:"presentDays"`
	AbsentDays       int `json:"absentDays"`
	HalfDays         int `json:"halfDays"`
	TotalWorkingDays int `json:"totalWorkingDays"`
}

// SummarizeAttendance tallies one month of attendance statuses.
// TotalWorkingDays is the record count, not the sum of the three counters:
// a "late" day inflates the denominator without crediting any counter.
func SummarizeAttendance(statuses []string) AttendanceSummary {
	summary := AttendanceSummary{TotalWorkingDays: len(statuses)}

	for _, status := range statuses {
		switch status {
		case attendancePresent:
			summary.PresentDays++
		case attendanceAbsent:
			summary.AbsentDays++
		case attendanceHalfDay:
			summary.HalfDays++
		}
	}

	if summary.TotalWorkingDays == 0 {
		summary.TotalWorkingDays = StandardWorkingDays
	}

	return summary
}

type SalaryBreakdown struct {
	BasicSalary     float64 `json:"basicSalary"`
	EarnedBasic     float64 `json:"earnedBasic"`
	SalaryLoss      float64 `json:"salaryLoss"`
	NetBasic        float64 `json:"netBasic"`
	TotalAllowances float64 `json:"totalAllowances"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}

func totalAllowances(s SalaryStructureRef) float64 {
	return s.HRA + s.DA + s.SpecialAllowance + s.Conveyance + s.MedicalAllowance + s.OtherAllowances
}

func totalDeductions(s SalaryStructureRef) float64 {
	return s.ProvidentFund + s.ProfessionalTax + s.IncomeTax + s.OtherDeductions
}

// CalculateBreakdown derives one month of pay. Only the basic salary is
// prorated by attendance; allowances and deductions apply in full.
// Approved leaves count one daily rate each, whatever their range spans.
func CalculateBreakdown(s SalaryStructureRef, att AttendanceSummary, approvedLeaveDays int) SalaryBreakdown {
	breakdown := SalaryBreakdown{
		BasicSalary:     s.BasicSalary,
		TotalAllowances: totalAllowances(s),
		TotalDeductions: totalDeductions(s),
	}

	if s.BasicSalary == 0 || att.TotalWorkingDays == 0 {
		return breakdown
	}

	dailyRate := s.BasicSalary / float64(att.TotalWorkingDays)
	halfDayRate := dailyRate / 2

	breakdown.EarnedBasic = float64(att.PresentDays)*dailyRate + float64(att.HalfDays)*halfDayRate
	breakdown.SalaryLoss = float64(att.AbsentDays)*dailyRate + float64(approvedLeaveDays)*dailyRate

	netBasic := breakdown.EarnedBasic - breakdown.SalaryLoss
	if netBasic < 0 {
		netBasic = 0
	}
	breakdown.NetBasic = netBasic

	netSalary := netBasic + breakdown.TotalAllowances - breakdown.TotalDeductions
	if netSalary < 0 {
		netSalary = 0
	}
	breakdown.NetSalary = netSalary

	return breakdown
}

// CalculateNetSalary is the scalar form used by salary previews.
func CalculateNetSalary(s SalaryStructureRef, att AttendanceSummary, approvedLeaveDays int) float64 {
	if s.BasicSalary == 0 || att.TotalWorkingDays == 0 {
		return 0
	}
	return CalculateBreakdown(s, att, approvedLeaveDays).NetSalary
}
