package model

// Department is an organizational unit employees are assigned to.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
