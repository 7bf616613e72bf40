package dashboard

type Stats struct {
	TotalEmployees int     `json:"totalEmployees"`
	PresentToday   int     `json:"presentToday"`
	OnLeave        int     `json:"onLeave"`
	TotalPayroll   float64 `json:"totalPayroll"`
	ActiveProjects int     `json:"activeProjects"`
	AvgAttendance  float64 `json:"avgAttendance"`
}

type Activity struct {
	ID       string `json:"id"`
	Employee string `json:"employee"`
	Action   string `json:"action"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

type Overview struct {
	Stats      Stats      `json:"stats"`
	Activities []Activity `json:"activities"`
}
