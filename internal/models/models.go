package models

import (
	"time"
)

// Application is one tracked job application. A single table holds the
// whole record; uploaded CV / cover letter files are referenced by
// relative path only.
type Application struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Company         string    `gorm:"not null" json:"company"`
	Role            string    `gorm:"not null" json:"role"`
	Salary          string    `json:"salary"`
	SalaryAmount    float64   `gorm:"default:0" json:"salary_amount"`
	SalaryCurrency  string    `gorm:"default:'PLN'" json:"salary_currency"`
	SalaryType      string    `gorm:"default:'yearly'" json:"salary_type"`
	URL             string    `gorm:"not null" json:"url"`
	DatePosted      string    `json:"date_posted"`
	DateApplied     string    `json:"date_applied"`
	CVPath          string    `json:"cv_path"`
	CoverLetterPath string    `json:"cover_letter_path"`
	Status          string    `gorm:"default:'Applied'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	LastUpdated     time.Time `json:"last_updated"`
}

// ApplicationStatuses is the pipeline a tracked application moves through.
var ApplicationStatuses = []string{
	"Applied",
	"Phone Screen",
	"Technical Interview",
	"Onsite Interview",
	"Offer",
	"Rejected",
	"Withdrawn",
	"Not Interested",
}

// SalaryCurrencies lists the currencies the normalizer supports.
var SalaryCurrencies = []string{"PLN", "EUR", "USD", "GBP"}

// SalaryTypes lists the supported salary periods.
var SalaryTypes = []string{"hourly", "monthly", "yearly"}
