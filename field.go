package tagql

import (
	"fmt"
	"strings"

	"github.com/tagforge/tagql/internal/types"
)

// TryF creates a field reference, returning an error if the name is not a
// valid identifier.
func TryF(name string) (types.Field, error) {
	if !isValidSQLIdentifier(name) {
		return types.Field{}, fmt.Errorf("invalid field name: %s", name)
	}
	return types.Field{Name: name}, nil
}

// F creates a field reference.
func F(name string) types.Field {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryWithTable creates a new Field with a table/alias prefix, returning an
// error if the prefix is invalid.
func TryWithTable(field types.Field, tableOrAlias string) (types.Field, error) {
	if !isValidTableAlias(tableOrAlias) && !isValidSQLIdentifier(tableOrAlias) {
		return types.Field{}, fmt.Errorf("WithTable requires single-letter alias (a-z) or valid table name, got: %s", tableOrAlias)
	}
	return types.Field{
		Name:  field.Name,
		Table: tableOrAlias,
	}, nil
}

// WithTable creates a new Field with a table/alias prefix.
func WithTable(field types.Field, tableOrAlias string) types.Field {
	f, err := TryWithTable(field, tableOrAlias)
	if err != nil {
		panic(err)
	}
	return f
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// Only allows alphanumeric characters and underscores, must start with
// letter or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Check for SQL injection patterns
	lower := strings.ToLower(s)

	suspiciousPatterns := []string{
		";", "--", "/*", "*/", "'", "\"", "`", "\\",
		" or ", " and ", "drop table", "delete from",
		"insert into", "update set", "select ",
		"union all", "union select",
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	// Reject if it contains spaces
	if strings.Contains(s, " ") {
		return false
	}

	return true
}
