package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PiotrPlachta/JobApp/internal/dtos"
	"github.com/PiotrPlachta/JobApp/internal/services"
)

// AnalysisHandler serves the extraction pipeline and the salary
// calculator.
type AnalysisHandler struct {
	Analyzer *services.AnalyzerService
	Salary   *services.SalaryService
}

func NewAnalysisHandler(analyzer *services.AnalyzerService, salary *services.SalaryService) *AnalysisHandler {
	return &AnalysisHandler{Analyzer: analyzer, Salary: salary}
}

// AnalyzeURL runs the pipeline for one posting URL. The endpoint is a
// best-effort autofill: a pipeline failure still answers 200 with a
// defaulted result carrying error_message, never a 5xx.
func (h *AnalysisHandler) AnalyzeURL(c *gin.Context) {
	var req dtos.AnalyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	result, tier, err := h.Analyzer.AnalyzeURL(c.Request.Context(), req.URL)
	if err != nil {
		log.Printf("analyze-url %s failed: %v", req.URL, err)
		c.JSON(http.StatusOK, services.DefaultedAnalysis(err.Error()))
		return
	}
	log.Printf("analyze-url %s parsed (%s)", req.URL, tier)
	c.JSON(http.StatusOK, result)
}

func (h *AnalysisHandler) CalculateYearlySalary(c *gin.Context) {
	var req dtos.SalaryCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	switch {
	case req.Amount == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: amount"})
		return
	case req.Currency == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: currency"})
		return
	case req.Type == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: type"})
		return
	}

	breakdown, err := h.Salary.Normalize(*req.Amount, *req.Currency, *req.Type)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
