// Package validation provides request-boundary validation helpers shared by
// the route handlers.
package validation

import (
	"fmt"
	"strings"
)

// ValidateGUID validates that a string matches standard GUID format (8-4-4-4-12).
// Example: 12345678-1234-1234-1234-123456789012
func ValidateGUID(guid, fieldName string) error {
	guid = strings.TrimSpace(guid)
	if guid == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	// Basic GUID format: 8-4-4-4-12 hex characters
	if len(guid) != 36 {
		return fmt.Errorf("%s should be a GUID (36 characters, format: 12345678-1234-1234-1234-123456789012)", fieldName)
	}
	if guid[8] != '-' || guid[13] != '-' || guid[18] != '-' || guid[23] != '-' {
		return fmt.Errorf("%s has invalid GUID format (dashes at wrong positions)", fieldName)
	}
	for i, c := range guid {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			continue
		}
		if !isHexDigit(byte(c)) {
			return fmt.Errorf("%s contains non-hex character at position %d", fieldName, i)
		}
	}
	return nil
}

// RequireFields returns the names of the required fields whose values are
// empty. An empty result means every field is present.
func RequireFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// SanitizeDisplayName escapes single quotes so a display name can be
// embedded in an OData filter expression without breaking the query.
func SanitizeDisplayName(name string) string {
	return strings.ReplaceAll(name, "'", "''")
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
