package dtos

// ApplicationCreateRequest is the POST /api/applications body. Company,
// role and url are required; everything else falls back to the record
// defaults.
type ApplicationCreateRequest struct {
	Company         string  `json:"company"`
	Role            string  `json:"role"`
	URL             string  `json:"url"`
	Salary          string  `json:"salary"`
	SalaryAmount    float64 `json:"salary_amount"`
	SalaryCurrency  string  `json:"salary_currency"`
	SalaryType      string  `json:"salary_type"`
	DatePosted      string  `json:"date_posted"`
	DateApplied     string  `json:"date_applied"`
	CVPath          string  `json:"cv_path"`
	CoverLetterPath string  `json:"cover_letter_path"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

// ApplicationUpdateRequest is the PUT body. Pointer fields distinguish
// "not sent" (keep the stored value) from "sent empty" (clear it).
type ApplicationUpdateRequest struct {
	Company         *string  `json:"company"`
	Role            *string  `json:"role"`
	URL             *string  `json:"url"`
	Salary          *string  `json:"salary"`
	SalaryAmount    *float64 `json:"salary_amount"`
	SalaryCurrency  *string  `json:"salary_currency"`
	SalaryType      *string  `json:"salary_type"`
	DatePosted      *string  `json:"date_posted"`
	DateApplied     *string  `json:"date_applied"`
	CVPath          *string  `json:"cv_path"`
	CoverLetterPath *string  `json:"cover_letter_path"`
	Status          *string  `json:"status"`
	Notes           *string  `json:"notes"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

// SalaryStats covers only records with a known (positive) salary amount.
type SalaryStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type StatsResponse struct {
	TotalApplications  int64          `json:"total_applications"`
	StatusDistribution []StatusCount  `json:"status_distribution"`
	TopCompanies       []CompanyCount `json:"top_companies"`
	SalaryStats        SalaryStats    `json:"salary_stats"`
}
