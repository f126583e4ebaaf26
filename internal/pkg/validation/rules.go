// Package validation holds the shared field validation rules that go beyond
// struct tag binding.
package validation

import (
	"regexp"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// ISO-8601 calendar date, e.g. 2024-02-01
	ISODatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Academic year span, e.g. 2024-2025
	AcademicYearPattern = `^\d{4}-\d{4}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	ISODate      *regexp.Regexp
	AcademicYear *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	ISODate:      regexp.MustCompile(ISODatePattern),
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
}

// IsISODate reports whether value is a real calendar date in ISO-8601 form.
// Empty values pass; absence is handled by the required rules.
func IsISODate(value string) bool {
	if value == "" {
		return true
	}
	if !CompiledPatterns.ISODate.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// IsAcademicYear reports whether value looks like an academic year span.
// Empty values pass.
func IsAcademicYear(value string) bool {
	return value == "" || CompiledPatterns.AcademicYear.MatchString(value)
}

// IsEmail reports whether value is a plausible email address. Empty values
// pass.
func IsEmail(value string) bool {
	return value == "" || CompiledPatterns.Email.MatchString(value)
}
