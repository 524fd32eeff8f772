package services

import (
	"github.com/PiotrPlachta/JobApp/internal/dtos"
)

// Fixed conversion rates to PLN, as of March 2025.
var conversionRates = map[string]float64{
	"PLN": 1.0,
	"EUR": 4.32,
	"USD": 3.95,
	"GBP": 5.10,
}

// Working year: 40 hours a week, 52 weeks.
const hoursPerYear = 40 * 52

// SalaryService converts a salary figure across periods and currencies
// using a fixed rate table. Pure computation, no state.
type SalaryService struct{}

func NewSalaryService() *SalaryService {
	return &SalaryService{}
}

// Normalize converts (amount, currency, salaryType) into a full
// period-by-currency grid. Unknown currencies are treated as PLN (1:1)
// and unknown periods as yearly. A negative amount is an error.
func (s *SalaryService) Normalize(amount float64, currency, salaryType string) (*dtos.SalaryBreakdown, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	rate, ok := conversionRates[currency]
	if !ok {
		rate = 1.0
	}
	amountPLN := amount * rate

	var yearlyPLN float64
	switch salaryType {
	case "hourly":
		yearlyPLN = amountPLN * hoursPerYear
	case "monthly":
		yearlyPLN = amountPLN * 12
	default:
		yearlyPLN = amountPLN
	}

	return &dtos.SalaryBreakdown{
		Yearly:  inAllCurrencies(yearlyPLN),
		Monthly: inAllCurrencies(yearlyPLN / 12),
		Daily:   inAllCurrencies(yearlyPLN / 365),
		Hourly:  inAllCurrencies(yearlyPLN / hoursPerYear),
	}, nil
}

func inAllCurrencies(amountPLN float64) dtos.CurrencyAmounts {
	return dtos.CurrencyAmounts{
		PLN: amountPLN,
		EUR: amountPLN / conversionRates["EUR"],
		USD: amountPLN / conversionRates["USD"],
		GBP: amountPLN / conversionRates["GBP"],
	}
}
