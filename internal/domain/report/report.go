package report

// Overview is the reports screen payload for one period. The backend owns
// every figure here.
type Overview struct {
	Period          string  `json:"period"`
	Headcount       int     `json:"headcount"`
	NewHires        int     `json:"newHires"`
	Departures      int     `json:"departures"`
	AvgAttendance   float64 `json:"avgAttendance"`
	TotalPayroll    float64 `json:"totalPayroll"`
	OvertimeHours   float64 `json:"overtimeHours"`
	DepartmentStats []DepartmentStat `json:"departmentStats,omitempty"`
}

type DepartmentStat struct {
	Name      string  `json:"name"`
	Employees int     `json:"employees"`
	Payroll   float64 `json:"payroll"`
}
