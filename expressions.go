package tagql

import (
	"fmt"

	"github.com/tagforge/tagql/internal/types"
)

// Constructors for concatenation and aggregation expressions.

// ConcatNull creates a null-propagating concatenation of two or more
// expressions. Unlike some backends' native concatenation, the result is
// NULL whenever any argument is NULL, on every supported dialect.
func ConcatNull(args ...types.Expression) types.ConcatExpression {
	e, err := TryConcatNull(args...)
	if err != nil {
		panic(err)
	}
	return e
}

// TryConcatNull creates a null-propagating concatenation, returning an error
// if fewer than two expressions are given.
func TryConcatNull(args ...types.Expression) (types.ConcatExpression, error) {
	if len(args) < 2 {
		return types.ConcatExpression{}, fmt.Errorf("ConcatNull requires at least 2 expressions, got %d", len(args))
	}
	for _, arg := range args {
		if arg == nil {
			return types.ConcatExpression{}, fmt.Errorf("ConcatNull arguments must not be nil")
		}
	}
	return types.ConcatExpression{Args: args}, nil
}

// StringAggOption configures a StringAgg expression.
type StringAggOption func(*types.StringAggExpression)

// Distinct deduplicates values before aggregation.
func Distinct() StringAggOption {
	return func(e *types.StringAggExpression) {
		e.Distinct = true
	}
}

// Delimiter sets the string that joins aggregated values. The default is a
// comma.
//
// The delimiter is inlined into the generated SQL as an escaped string
// literal, NOT bound as a parameter: every backend's aggregate syntax
// requires a literal separator. It must therefore be a trusted,
// non-user-controlled value.
func Delimiter(d string) StringAggOption {
	return func(e *types.StringAggExpression) {
		e.Delimiter = d
	}
}

// StringAgg creates a delimited string aggregation of an expression's values
// across a group of rows. The result is a text value.
func StringAgg(expr types.Expression, opts ...StringAggOption) types.StringAggExpression {
	e, err := TryStringAgg(expr, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// TryStringAgg creates a delimited string aggregation, returning an error if
// the expression is nil or the delimiter is empty.
func TryStringAgg(expr types.Expression, opts ...StringAggOption) (types.StringAggExpression, error) {
	if expr == nil {
		return types.StringAggExpression{}, fmt.Errorf("StringAgg requires an expression")
	}
	e := types.StringAggExpression{
		Expr:      expr,
		Delimiter: ",",
	}
	for _, opt := range opts {
		opt(&e)
	}
	if e.Delimiter == "" {
		return types.StringAggExpression{}, fmt.Errorf("StringAgg delimiter must not be empty")
	}
	return e, nil
}

// As returns a copy of the expression with an alias attached.
// Only concatenation and aggregation expressions can carry an alias.
func As(expr types.Expression, alias string) types.Expression {
	e, err := TryAs(expr, alias)
	if err != nil {
		panic(err)
	}
	return e
}

// TryAs returns a copy of the expression with an alias attached, returning
// an error if the alias is not a valid identifier or the expression cannot
// carry one.
func TryAs(expr types.Expression, alias string) (types.Expression, error) {
	if !isValidSQLIdentifier(alias) {
		return nil, fmt.Errorf("invalid alias '%s': must be alphanumeric/underscore and start with letter/underscore", alias)
	}
	switch e := expr.(type) {
	case types.ConcatExpression:
		e.Alias = alias
		return e, nil
	case types.StringAggExpression:
		e.Alias = alias
		return e, nil
	default:
		return nil, fmt.Errorf("alias is not supported on %T", expr)
	}
}
