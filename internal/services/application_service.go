package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/PiotrPlachta/JobApp/internal/dtos"
	"github.com/PiotrPlachta/JobApp/internal/models"
)

// ApplicationService owns the applications table. Handlers never touch
// the database directly.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create stores a new application, filling defaults for anything the
// request left blank. The caller has already validated required fields.
func (s *ApplicationService) Create(req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	app := &models.Application{
		Company:         req.Company,
		Role:            req.Role,
		URL:             req.URL,
		Salary:          req.Salary,
		SalaryAmount:    req.SalaryAmount,
		SalaryCurrency:  req.SalaryCurrency,
		SalaryType:      req.SalaryType,
		DatePosted:      req.DatePosted,
		DateApplied:     req.DateApplied,
		CVPath:          req.CVPath,
		CoverLetterPath: req.CoverLetterPath,
		Status:          req.Status,
		Notes:           req.Notes,
		LastUpdated:     time.Now(),
	}
	if app.SalaryCurrency == "" {
		app.SalaryCurrency = "PLN"
	}
	if app.SalaryType == "" {
		app.SalaryType = "yearly"
	}
	if app.Status == "" {
		app.Status = "Applied"
	}
	if app.DateApplied == "" {
		app.DateApplied = time.Now().Format("2006-01-02")
	}

	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Get(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.DB.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// List returns every application, most recently applied first.
func (s *ApplicationService) List() ([]models.Application, error) {
	var apps []models.Application
	if err := s.DB.Order("date_applied DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Update applies a partial update. Only fields present in the request are
// written; last_updated is always refreshed, even for an empty body.
func (s *ApplicationService) Update(id uint, req *dtos.ApplicationUpdateRequest) (*models.Application, error) {
	app, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Role != nil {
		app.Role = *req.Role
	}
	if req.URL != nil {
		app.URL = *req.URL
	}
	if req.Salary != nil {
		app.Salary = *req.Salary
	}
	if req.SalaryAmount != nil {
		app.SalaryAmount = *req.SalaryAmount
	}
	if req.SalaryCurrency != nil {
		app.SalaryCurrency = *req.SalaryCurrency
	}
	if req.SalaryType != nil {
		app.SalaryType = *req.SalaryType
	}
	if req.DatePosted != nil {
		app.DatePosted = *req.DatePosted
	}
	if req.DateApplied != nil {
		app.DateApplied = *req.DateApplied
	}
	if req.CVPath != nil {
		app.CVPath = *req.CVPath
	}
	if req.CoverLetterPath != nil {
		app.CoverLetterPath = *req.CoverLetterPath
	}
	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	app.LastUpdated = time.Now()

	if err := s.DB.Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Delete(id uint) error {
	res := s.DB.Delete(&models.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates the whole table: total count, per-status counts, the
// five most frequent companies (ties broken by name so the order is
// deterministic) and salary figures over records with a known amount.
func (s *ApplicationService) Stats() (*dtos.StatsResponse, error) {
	stats := &dtos.StatsResponse{
		StatusDistribution: []dtos.StatusCount{},
		TopCompanies:       []dtos.CompanyCount{},
	}

	if err := s.DB.Model(&models.Application{}).Count(&stats.TotalApplications).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.StatusDistribution).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Application{}).
		Select("company, COUNT(*) AS count").
		Group("company").
		Order("count DESC, company ASC").
		Limit(5).
		Scan(&stats.TopCompanies).Error; err != nil {
		return nil, err
	}

	// COALESCE keeps the aggregates at 0 when no record has a known salary.
	if err := s.DB.Model(&models.Application{}).
		Select("COALESCE(AVG(salary_amount), 0) AS average, COALESCE(MIN(salary_amount), 0) AS min, COALESCE(MAX(salary_amount), 0) AS max").
		Where("salary_amount > 0").
		Scan(&stats.SalaryStats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
