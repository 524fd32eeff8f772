package dtos

// AnalyzeURLRequest asks the extraction pipeline to process a posting URL.
type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// JobAnalysis is what the pipeline extracts from a posting. It always
// carries the full field set; fields the model could not determine hold
// sentinel defaults. RawResponse and ErrorMessage are diagnostic only.
type JobAnalysis struct {
	Company        string   `json:"company"`
	Role           string   `json:"role"`
	Salary         string   `json:"salary"`
	SalaryAmount   float64  `json:"salary_amount"`
	SalaryCurrency string   `json:"salary_currency"`
	SalaryType     string   `json:"salary_type"`
	DatePosted     string   `json:"date_posted"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Location       string   `json:"location"`
	RawResponse    string   `json:"raw_response,omitempty"`
	ErrorMessage   string   `json:"error_message,omitempty"`
}

// SalaryCalculationRequest is the POST /api/calculate-yearly-salary body.
// Pointers so that a missing field is distinguishable from a zero value.
type SalaryCalculationRequest struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
	Type     *string  `json:"type"`
}

// CurrencyAmounts is one period's value expressed in every supported currency.
type CurrencyAmounts struct {
	PLN float64 `json:"PLN"`
	EUR float64 `json:"EUR"`
	USD float64 `json:"USD"`
	GBP float64 `json:"GBP"`
}

// SalaryBreakdown is the full period/currency grid for one input salary.
type SalaryBreakdown struct {
	Yearly  CurrencyAmounts `json:"yearly"`
	Monthly CurrencyAmounts `json:"monthly"`
	Daily   CurrencyAmounts `json:"daily"`
	Hourly  CurrencyAmounts `json:"hourly"`
}
