package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize is the upload ceiling, 16 MiB.
const MaxUploadSize = 16 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".rtf":  true,
}

var uploadCategories = map[string]bool{
	"cv":           true,
	"cover_letter": true,
}

// UploadService stores CV and cover-letter files under a base directory,
// one subdirectory per category. Records reference the returned relative
// path, never an absolute filesystem path.
type UploadService struct {
	BaseDir string
}

func NewUploadService(baseDir string) *UploadService {
	return &UploadService{BaseDir: baseDir}
}

// Save validates and stores one uploaded file. The stored name is the
// sanitized original prefixed with a nanosecond timestamp, so two uploads
// with identical names never collide. An empty category means "cv".
func (s *UploadService) Save(r io.Reader, filename, category string) (string, error) {
	if category == "" {
		category = "cv"
	}
	if !uploadCategories[category] {
		return "", ErrBadCategory
	}
	if strings.TrimSpace(filename) == "" {
		return "", ErrNoFilename
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(filename))] {
		return "", ErrBadExtension
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(filename))
	dir := filepath.Join(s.BaseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	// Copy at most one byte past the limit; landing there means the
	// payload was too big, regardless of what Content-Length claimed.
	written, err := io.CopyN(dst, r, MaxUploadSize+1)
	if err != nil && err != io.EOF {
		os.Remove(dst.Name())
		return "", fmt.Errorf("store upload: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return filepath.ToSlash(filepath.Join(category, name)), nil
}

// sanitizeFilename strips any directory components and replaces
// everything outside [A-Za-z0-9._-] with an underscore.
func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	// ".." can survive Base on degenerate input; never allow it.
	cleaned := b.String()
	if cleaned == "" || strings.Trim(cleaned, ".") == "" {
		return "file"
	}
	return cleaned
}
