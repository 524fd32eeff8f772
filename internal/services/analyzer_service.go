package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/PiotrPlachta/JobApp/internal/dtos"
)

// ParseTier records which repair tier produced the analysis result.
type ParseTier int

const (
	// ParsedStrict: the model reply was valid JSON as-is.
	ParsedStrict ParseTier = iota
	// ParsedRecovered: JSON was salvaged from inside the reply.
	ParsedRecovered
	// Defaulted: nothing parseable; sentinel values substituted.
	Defaulted
)

func (t ParseTier) String() string {
	switch t {
	case ParsedStrict:
		return "strict"
	case ParsedRecovered:
		return "recovered"
	default:
		return "defaulted"
	}
}

// AnalyzerService runs the scrape → sanitize → prompt → repair pipeline.
// Every stage either succeeds or fails with its tag; the model reply is
// never trusted to be well-formed.
type AnalyzerService struct {
	Scraper *ScraperService
	LLM     *LLMService
}

func NewAnalyzerService(scraper *ScraperService, llm *LLMService) *AnalyzerService {
	return &AnalyzerService{Scraper: scraper, LLM: llm}
}

// AnalyzeURL processes one posting URL end to end. On success the result
// always carries the full field set, with defaults for anything the
// model omitted. The returned error, if any, is one of ErrScrape,
// ErrEmptyContent or ErrLLM.
func (s *AnalyzerService) AnalyzeURL(ctx context.Context, url string) (*dtos.JobAnalysis, ParseTier, error) {
	content, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		return nil, Defaulted, fmt.Errorf("%w: %v", ErrScrape, err)
	}
	if content == "" {
		return nil, Defaulted, ErrEmptyContent
	}

	reply, err := s.LLM.ExtractJobDetails(ctx, content)
	if err != nil {
		return nil, Defaulted, fmt.Errorf("%w: %v", ErrLLM, err)
	}

	result, tier := repairReply(reply)
	if tier == Defaulted {
		log.Printf("analyze %s: model reply was not JSON, using defaults", url)
	}
	applyAnalysisDefaults(result)
	return result, tier, nil
}

// repairReply is the three-tier parse: strict, then a substring between
// the first '{' and the last '}', then sentinel defaults carrying the
// raw reply for diagnostics.
func repairReply(reply string) (*dtos.JobAnalysis, ParseTier) {
	var strict dtos.JobAnalysis
	if err := json.Unmarshal([]byte(reply), &strict); err == nil {
		return &strict, ParsedStrict
	}

	if candidate := extractJSONObject(reply); candidate != "" {
		var recovered dtos.JobAnalysis
		if err := json.Unmarshal([]byte(candidate), &recovered); err == nil {
			return &recovered, ParsedRecovered
		}
	}

	return &dtos.JobAnalysis{
		Company:        "Unknown",
		Role:           "Unknown",
		SalaryAmount:   0,
		SalaryCurrency: "PLN",
		SalaryType:     "yearly",
		RawResponse:    reply,
	}, Defaulted
}

// extractJSONObject strips markdown fences and cuts the reply down to the
// outermost brace pair. Returns "" when no object is present.
func extractJSONObject(reply string) string {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```json") {
		reply = strings.TrimPrefix(reply, "```json")
	} else if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```")
	}
	reply = strings.TrimSuffix(strings.TrimSpace(reply), "```")

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return ""
	}
	return reply[start : end+1]
}

// applyAnalysisDefaults guarantees the full field set regardless of what
// the model returned. date_posted stays empty when absent; it is not
// inferred.
func applyAnalysisDefaults(a *dtos.JobAnalysis) {
	if a.SalaryCurrency == "" {
		a.SalaryCurrency = "PLN"
	}
	if a.SalaryType == "" {
		a.SalaryType = "yearly"
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
}

// DefaultedAnalysis is what the API returns when a pipeline stage failed
// outright: every field present, all sentinels, plus the failure reason.
func DefaultedAnalysis(errMsg string) *dtos.JobAnalysis {
	return &dtos.JobAnalysis{
		Company:        "Unknown",
		Role:           "Unknown",
		SalaryAmount:   0,
		SalaryCurrency: "PLN",
		SalaryType:     "yearly",
		Skills:         []string{},
		ErrorMessage:   errMsg,
	}
}
