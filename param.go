package tagql

import (
	"fmt"
	"strings"

	"github.com/tagforge/tagql/internal/types"
)

// This is the primary way to reference user values in expressions.
func P(name string) types.Param {
	p, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

// TryP creates a parameter reference, returning an error if the name is
// invalid.
func TryP(name string) (types.Param, error) {
	if !isValidParamName(name) {
		return types.Param{}, fmt.Errorf("invalid parameter name '%s': must be alphanumeric with underscores, starting with letter", name)
	}
	return types.Param{Name: name}, nil
}

// Only allows alphanumeric characters and underscores, must start with letter.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}

	// Must start with letter (not underscore for params)
	first := name[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z')) {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Reject SQL keywords that could be confusing
	lower := strings.ToLower(name)

	sqlKeywords := []string{
		"select", "insert", "update", "delete", "drop",
		"create", "alter", "table", "from", "where",
		"and", "or", "not", "null", "true", "false",
		"union", "join", "having", "group", "order",
	}

	for _, keyword := range sqlKeywords {
		if lower == keyword {
			return false
		}
	}

	// Also reject if it contains any special SQL patterns
	suspiciousPatterns := []string{
		"--", "/*", "*/", "'", "\"", ";", "\\",
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(name, pattern) {
			return false
		}
	}

	return true
}
