package tagql

import (
	"fmt"

	"github.com/tagforge/tagql/internal/types"
	"github.com/zoobzio/dbml"
)

// TagQL represents an instance of the expression builder bound to a specific
// DBML schema. Field and table references created through it are validated
// against the schema.
type TagQL struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> field -> column
}

// NewFromDBML creates a new TagQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*TagQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	q := &TagQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		q.tables[table.Name] = table
		q.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			q.fields[table.Name][col.Name] = col
		}
	}

	return q, nil
}

// validateTable checks if a table exists in the schema.
func (q *TagQL) validateTable(name string) error {
	if _, ok := q.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// validateField checks if a field exists in any table in the schema.
func (q *TagQL) validateField(name string) error {
	for _, tableFields := range q.fields {
		if _, ok := tableFields[name]; ok {
			return nil // Found it
		}
	}
	return fmt.Errorf("field '%s' not found in schema", name)
}

// TryF creates a schema-validated field reference, returning an error if
// invalid.
func (q *TagQL) TryF(name string) (types.Field, error) {
	if err := q.validateField(name); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	return types.Field{Name: name}, nil
}

// F creates a schema-validated field reference.
func (q *TagQL) F(name string) types.Field {
	f, err := q.TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryT validates that a table exists in the schema and returns its name,
// returning an error if invalid.
func (q *TagQL) TryT(name string) (string, error) {
	if err := q.validateTable(name); err != nil {
		return "", fmt.Errorf("invalid table: %w", err)
	}
	return name, nil
}

// T validates that a table exists in the schema and returns its name.
func (q *TagQL) T(name string) string {
	t, err := q.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// WithTable creates a schema-validated field reference with a table/alias
// prefix.
func (q *TagQL) WithTable(field types.Field, tableOrAlias string) types.Field {
	f, err := q.TryWithTable(field, tableOrAlias)
	if err != nil {
		panic(err)
	}
	return f
}

// TryWithTable creates a schema-validated field reference with a table/alias
// prefix, returning an error if invalid.
func (q *TagQL) TryWithTable(field types.Field, tableOrAlias string) (types.Field, error) {
	// Must be either a single lowercase letter (table alias) or a table
	// registered in the schema.
	if !isValidTableAlias(tableOrAlias) {
		if err := q.validateTable(tableOrAlias); err != nil {
			return types.Field{}, fmt.Errorf("WithTable requires single-letter alias (a-z) or valid table name, got: %s", tableOrAlias)
		}
	}
	return types.Field{
		Name:  field.Name,
		Table: tableOrAlias,
	}, nil
}
