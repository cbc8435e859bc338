package model

// Employee links an account (by email) to a department and position.
// EmployeeID is a free-text external label, distinct from the record id.
// Multiple employee records may reference the same account email.
type Employee struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	UserEmail    string `json:"userEmail"`
	Position     string `json:"position"`
	DepartmentID string `json:"departmentId"`
	HireDate     string `json:"hireDate"` // ISO date (YYYY-MM-DD), free-form
}
