package cli

import (
	"errors"
	"fmt"
)

// Category groups failures for exit-code mapping. Per-track failures inside
// a batch are tallied and reported, never wrapped in one of these; a
// categorized error means the whole command could not proceed.
type Category string

const (
	CategoryUsage       Category = "invalid_input"
	CategoryNetwork     Category = "network"
	CategoryStorage     Category = "storage"
	CategoryFilesystem  Category = "filesystem"
	CategoryTranscode   Category = "transcode"
	CategoryUnavailable Category = "unavailable"
)

// CategorizedError attaches a Category to an underlying error.
type CategorizedError struct {
	Category Category
	Err      error
}

func (e CategorizedError) Error() string {
	if e.Err == nil {
		return string(e.Category)
	}
	return e.Err.Error()
}

func (e CategorizedError) Unwrap() error { return e.Err }

func wrapCategory(cat Category, err error) error {
	if err == nil {
		return nil
	}
	return CategorizedError{Category: cat, Err: err}
}

func categorizef(cat Category, format string, args ...any) error {
	return CategorizedError{Category: cat, Err: fmt.Errorf(format, args...)}
}

// CategoryOf reports the category of err, or "unknown" when it carries none.
func CategoryOf(err error) Category {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return "unknown"
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch CategoryOf(err) {
	case CategoryUsage:
		return 2
	case CategoryNetwork:
		return 3
	case CategoryStorage:
		return 4
	case CategoryFilesystem:
		return 5
	case CategoryTranscode:
		return 6
	case CategoryUnavailable:
		return 7
	default:
		return 1
	}
}
