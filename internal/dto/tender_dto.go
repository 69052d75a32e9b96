package dto

// TenderRequest carries create and update payloads. Dates arrive as strings
// and are validated by the service.
type TenderRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	StartDate   string  `json:"startDate"`
	Deadline    string  `json:"deadline"`
	Department  string  `json:"department"`
	Status      string  `json:"status"`
}
