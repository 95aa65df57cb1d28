// Package sqlite provides the SQLite dialect renderer for tagql.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/tagforge/tagql/internal/render"
	"github.com/tagforge/tagql/internal/types"
)

// Renderer implements the SQLite dialect renderer.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts an expression to a Fragment with SQLite SQL.
//
// SQLite has no null-propagating CONCAT() function, so concatenation uses
// the || operator, which propagates NULL. String aggregation uses
// GROUP_CONCAT(expr, 'delimiter'); SQLite's grammar cannot combine DISTINCT
// with a custom separator, so that combination is rejected.
func (r *Renderer) Render(expr types.Expression) (*types.Fragment, error) {
	// Validate unsupported combinations before structural validation
	if err := r.validateExpression(expr); err != nil {
		return nil, err
	}

	if err := types.Validate(expr); err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}

	var sql strings.Builder
	var params []string
	usedParams := make(map[string]bool)

	addParam := func(param types.Param) string {
		placeholder := ":" + param.Name
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

// validateExpression recursively checks for SQLite-unsupported combinations.
func (r *Renderer) validateExpression(expr types.Expression) error {
	switch e := expr.(type) {
	case types.ConcatExpression:
		for _, arg := range e.Args {
			if err := r.validateExpression(arg); err != nil {
				return err
			}
		}
	case types.StringAggExpression:
		if e.Distinct && e.Delimiter != "," {
			return render.NewUnsupportedFeatureError("sqlite", "DISTINCT with a custom delimiter",
				"group_concat(DISTINCT ...) only supports the default comma separator")
		}
		return r.validateExpression(e.Expr)
	}
	return nil
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
		sql.WriteString("GROUP_CONCAT(")
		if e.Distinct {
			sql.WriteString("DISTINCT ")
			if err := r.renderExpression(e.Expr, sql, addParam, false); err != nil {
				return err
			}
		} else {
			if err := r.renderExpression(e.Expr, sql, addParam, false); err != nil {
				return err
			}
			sql.WriteString(", ")
			sql.WriteString(r.quoteLiteral(e.Delimiter))
		}
		sql.WriteString(")")
		if top && e.Alias != "" {
			sql.WriteString(" AS " + r.quoteIdentifier(e.Alias))
		}
	default:
		return fmt.Errorf("unknown expression type: %T", expr)
	}
	return nil
}

// quoteIdentifier quotes a SQLite identifier with double quotes.
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

// Capabilities returns the features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ConcatFunction:        false,
		DistinctAggregate:     true,
		DistinctWithDelimiter: false,
		TextCast:              false,
	}
}
