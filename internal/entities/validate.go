package entities

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateName checks the constraints shared by category and exercise names.
// Length is counted in characters, not bytes.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return fmt.Errorf("name must be at most %d characters, got %d", NameMaxLength, n)
	}
	return nil
}

// ValidateSet checks the weight and repetition count of an exercise record.
func ValidateSet(weight, rep int) error {
	if weight < 0 {
		return fmt.Errorf("weight must not be negative, got %d", weight)
	}
	if rep < 0 {
		return fmt.Errorf("rep must not be negative, got %d", rep)
	}
	return nil
}
