package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Package ids are small positive integers
	validIDPattern = regexp.MustCompile(`^[0-9]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 9 {
		return errors.New("id too long (max 9 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ParsePackageID validates raw and converts it to a positive package id.
func ParsePackageID(raw string) (int, error) {
	if err := ValidateID(raw); err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
