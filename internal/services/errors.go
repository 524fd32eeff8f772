package services

import "errors"

// ErrNotFound is returned when an application id does not exist.
var ErrNotFound = errors.New("application not found")

// ErrNegativeAmount is the one way a salary conversion can fail.
var ErrNegativeAmount = errors.New("salary amount must not be negative")

// Upload validation failures. Handlers surface these verbatim as 400s.
var (
	ErrNoFilename   = errors.New("no filename provided")
	ErrBadExtension = errors.New("file type not allowed (use pdf, doc, docx, txt or rtf)")
	ErrFileTooLarge = errors.New("file exceeds the 16 MiB upload limit")
	ErrBadCategory  = errors.New("unknown upload type (use cv or cover_letter)")
)

// Extraction pipeline stage failures. Each stage maps to exactly one tag
// so callers can tell where the pipeline stopped.
var (
	ErrScrape       = errors.New("scrape_error")
	ErrEmptyContent = errors.New("empty_content")
	ErrLLM          = errors.New("llm_error")
)
