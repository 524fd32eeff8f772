package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/PiotrPlachta/JobApp/internal/config"
)

const jobExtractionPrompt = `You are an expert job application assistant. Analyze the following job posting text and extract the key information.
Return the results in JSON format with the following fields:
- company: The company name
- role: The job title/role
- salary: The full salary text as mentioned in the posting (if available)
- salary_amount: The numeric salary amount (if available, otherwise 0)
- salary_currency: The currency of the salary (PLN, EUR, USD, GBP, etc.)
- salary_type: The type of salary (hourly, monthly, yearly)
- date_posted: The date the job was posted (in YYYY-MM-DD format if available)
- skills: A list of key skills required for the job
- experience: The required experience level
- location: The job location

If any information is not available, use null or empty values. For salary_amount, use 0 if not available.
For salary_currency, default to "PLN" if not specified.
For salary_type, default to "yearly" if not specified.

IMPORTANT: Your response must be valid JSON format only, with no additional text before or after the JSON.

Job Posting Text:
%s`

// defaultLLMTimeout bounds a prompt round-trip when no timeout is configured.
const defaultLLMTimeout = 30 * time.Second

// LLMService wraps the Gemini client. Client is an interface so tests can
// substitute a canned model.
type LLMService struct {
	Client  llms.Model
	Timeout time.Duration
}

// NewLLMService initializes the Gemini client from config.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm, Timeout: cfg.LLMTimeout}, nil
}

// ExtractJobDetails asks the model for a structured extraction of the
// sanitized posting text. The reply is raw text; callers must not trust
// it to be well-formed JSON. The call is bounded by s.Timeout.
func (s *LLMService) ExtractJobDetails(ctx context.Context, text string) (string, error) {
	if len(text) > maxContentChars {
		text = truncateAtRuneBoundary(text, maxContentChars)
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	prompt := fmt.Sprintf(jobExtractionPrompt, text)
	return llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
}
