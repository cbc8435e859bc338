package model

// Request status values. No operation transitions a request away from
// Pending; the field exists so listings can render historical data that
// carries other statuses.
const (
	RequestStatusPending  = "Pending"
	RequestStatusApproved = "Approved"
	RequestStatusRejected = "Rejected"
)

// RequestItem is a single line of a request: a named item and a quantity.
type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Request is a write-once submission created by an authenticated account.
// EmployeeEmail records the creator; Date is the ISO creation date.
type Request struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}
