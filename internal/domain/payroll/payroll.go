package payroll

type Entry struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	Name          string  `json:"name"`
	Department    string  `json:"department,omitempty"`
	BaseSalary    float64 `json:"baseSalary"`
	Bonus         float64 `json:"bonus"`
	Deductions    float64 `json:"deductions"`
	NetSalary     float64 `json:"netSalary"`
	Status        string  `json:"status"` // paid | pending | processing
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
	Period        string  `json:"period"`
}

type Summary struct {
	TotalPayroll  float64 `json:"totalPayroll"`
	Processed     float64 `json:"processed"`
	Pending       float64 `json:"pending"`
	EmployeesPaid int     `json:"employeesPaid"`
	AverageSalary float64 `json:"averageSalary"`
	TaxDeductions float64 `json:"taxDeductions"`
}
