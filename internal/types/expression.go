package types

import "fmt"

// Expression represents a renderable SQL value: a column reference, a bound
// parameter, or a nested expression.
// This is exported from the internal package so the base package and dialect
// renderers can use it, but external users cannot construct arbitrary
// implementations.
type Expression interface {
	IsExpression()
}

// Field represents a column reference, optionally qualified by a table name
// or alias.
type Field struct {
	Table string
	Name  string
}

// Param represents a named bound parameter.
// Parameter values travel out-of-band from the SQL text; renderers emit a
// `:name` placeholder and record the name in Fragment.RequiredParams.
type Param struct {
	Name string
}

// ConcatExpression represents a null-propagating concatenation of two or
// more expressions. The result is NULL whenever any argument is NULL.
type ConcatExpression struct {
	Alias string
	Args  []Expression
}

// StringAggExpression represents a delimited string aggregation: the values
// of Expr across a group of rows, joined by Delimiter, optionally
// deduplicated first. The result is a text value.
//
// Delimiter is inlined into the generated SQL as an escaped string literal,
// never bound as a parameter. It must be a trusted literal.
type StringAggExpression struct {
	Expr      Expression
	Delimiter string
	Alias     string
	Distinct  bool
}

// Implement the Expression interface.
func (Field) IsExpression()               {}
func (Param) IsExpression()               {}
func (ConcatExpression) IsExpression()    {}
func (StringAggExpression) IsExpression() {}

// Validate performs basic structural validation on an expression tree.
func Validate(expr Expression) error {
	switch e := expr.(type) {
	case Field:
		if e.Name == "" {
			return fmt.Errorf("field name is required")
		}
	case Param:
		if e.Name == "" {
			return fmt.Errorf("parameter name is required")
		}
	case ConcatExpression:
		if len(e.Args) < 2 {
			return fmt.Errorf("concat requires at least 2 expressions, got %d", len(e.Args))
		}
		for _, arg := range e.Args {
			if err := Validate(arg); err != nil {
				return err
			}
		}
	case StringAggExpression:
		if e.Expr == nil {
			return fmt.Errorf("string aggregate requires an expression")
		}
		if e.Delimiter == "" {
			return fmt.Errorf("string aggregate requires a delimiter")
		}
		return Validate(e.Expr)
	case nil:
		return fmt.Errorf("expression is nil")
	default:
		return fmt.Errorf("unknown expression type: %T", expr)
	}
	return nil
}
