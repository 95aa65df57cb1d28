// Package postgres provides the PostgreSQL dialect renderer for tagql.
package postgres

import (
	"fmt"
	"strings"

	"github.com/tagforge/tagql/internal/render"
	"github.com/tagforge/tagql/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts an expression to a Fragment with PostgreSQL SQL.
//
// Concatenation uses the || operator form: PostgreSQL's CONCAT() treats NULL
// as an empty string, while || propagates NULL as the contract requires.
// String aggregation uses STRING_AGG with the input cast to TEXT, since
// STRING_AGG requires matching textual types; the delimiter is inlined as an
// escaped string literal, never bound.
func (r *Renderer) Render(expr types.Expression) (*types.Fragment, error) {
	if err := types.Validate(expr); err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}

	var sql strings.Builder
	var params []string
	usedParams := make(map[string]bool)

	// Helper to add a parameter and return its placeholder
	addParam := func(param types.Param) string {
		// Use named parameters for sqlx
		placeholder := ":" + param.Name

		// Track unique parameter names
		if !usedParams[param.Name] {
			params = append(params, param.Name)
			usedParams[param.Name] = true
		}

		return placeholder
	}

	if err := r.renderExpression(expr, &sql, addParam, true); err != nil {
		return nil, err
	}

	return &types.Fragment{
		SQL:            sql.String(),
		RequiredParams: params,
	}, nil
}

func (r *Renderer) renderExpression(expr types.Expression, sql *strings.Builder, addParam func(types.Param) string, top bool) error {
	switch e := expr.(type) {
	case types.Field:
		sql.WriteString(r.renderField(e))
	case types.Param:
		sql.WriteString(addParam(e))
	case types.ConcatExpression:
		sql.WriteString("(")
		for i, arg := range e.Args {
			if i > 0 {
				sql.WriteString(" || ")
			}
			if err := r.renderExpression(arg, sql, addParam, false); err != nil {
				return err
			}
		}
		sql.WriteString(")")
		if top && e.Alias != "" {
			sql.WriteString(" AS " + r.quoteIdentifier(e.Alias))
		}
	case types.StringAggExpression:
		sql.WriteString("STRING_AGG(")
		if e.Distinct {
			sql.WriteString("DISTINCT ")
		}
		sql.WriteString("(")
		if err := r.renderExpression(e.Expr, sql, addParam, false); err != nil {
			return err
		}
		sql.WriteString(")::TEXT, ")
		sql.WriteString(r.quoteLiteral(e.Delimiter))
		sql.WriteString(")")
		if top && e.Alias != "" {
			sql.WriteString(" AS " + r.quoteIdentifier(e.Alias))
		}
	default:
		return fmt.Errorf("unknown expression type: %T", expr)
	}
	return nil
}

// quoteIdentifier quotes a PostgreSQL identifier with double quotes.
func (r *Renderer) quoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

// quoteLiteral quotes a string literal for inlining, doubling any embedded
// single quotes.
func (r *Renderer) quoteLiteral(value string) string {
	escaped := strings.ReplaceAll(value, "'", "''")
	return "'" + escaped + "'"
}

func (r *Renderer) renderField(field types.Field) string {
	quotedName := r.quoteIdentifier(field.Name)
	if field.Table != "" {
		return fmt.Sprintf("%s.%s", field.Table, quotedName)
	}
	return quotedName
}

// Capabilities returns the features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ConcatFunction:        false, // CONCAT() ignores NULLs, operator form used instead
		DistinctAggregate:     true,
		DistinctWithDelimiter: true,
		TextCast:              true,
	}
}
