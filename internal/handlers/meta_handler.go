package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PiotrPlachta/JobApp/internal/models"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func GetApplicationStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, models.ApplicationStatuses)
}

func GetSalaryCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, models.SalaryCurrencies)
}

func GetSalaryTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.SalaryTypes)
}
