package attendance

type Record struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Name       string  `json:"name"`
	Department string  `json:"department,omitempty"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"checkIn,omitempty"`
	CheckOut   string  `json:"checkOut,omitempty"`
	Status     string  `json:"status"` // present | absent | late | half-day
	Hours      float64 `json:"hours"`
	Overtime   float64 `json:"overtime"`
}

// Summary mirrors the stats row of the attendance screen. Every figure comes
// from the backend; the console never computes or invents them.
type Summary struct {
	TotalEmployees  int     `json:"totalEmployees"`
	PresentToday    int     `json:"presentToday"`
	AbsentToday     int     `json:"absentToday"`
	LateToday       int     `json:"lateToday"`
	AvgAttendance   float64 `json:"avgAttendance"`
	AvgWorkingHours float64 `json:"avgWorkingHours"`
}

type Filter struct {
	Status string // empty means all
	Search string
	Range  string // today | week | month
}
