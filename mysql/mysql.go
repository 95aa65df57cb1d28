// Package mysql provides the MySQL/MariaDB dialect renderer for tagql.
package mysql

import (
	"fmt"
	"strings"

	"github.com/tagforge/tagql/internal/render"
	"github.com/tagforge/tagql/internal/types"
)

// Renderer implements the MySQL dialect renderer. MariaDB shares the same
// syntax for concatenation and string aggregation.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts an expression to a Fragment with MySQL SQL.
//
// Concatenation uses CONCAT(), which propagates NULL on MySQL. String
// aggregation uses GROUP_CONCAT with a SEPARATOR clause; the separator must
// be a literal in MySQL's grammar, so the delimiter is inlined as an escaped
// string literal, never bound.
func (r *Renderer) Render(expr types.Expression) (*types.Fragment, error) {
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

func (r *Renderer) renderExpression(expr types.Expression, sql *strings.Builder, addParam func(types.Param) string, top bool) error {
	switch e := expr.(type) {
	case types.Field:
		sql.WriteString(r.renderField(e))
	case types.Param:
		sql.WriteString(addParam(e))
	case types.ConcatExpression:
		sql.WriteString("CONCAT(")
		for i, arg := range e.Args {
			if i > 0 {
				sql.WriteString(", ")
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
		}
		if err := r.renderExpression(e.Expr, sql, addParam, false); err != nil {
			return err
		}
		sql.WriteString(" SEPARATOR ")
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

// quoteIdentifier quotes a MySQL identifier with backticks.
func (r *Renderer) quoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, "`", "``")
	return "`" + escaped + "`"
}

// quoteLiteral quotes a string literal for inlining. MySQL treats backslash
// as an escape character in string literals, so both backslashes and single
// quotes are escaped.
func (r *Renderer) quoteLiteral(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", "''")
	return "'" + escaped + "'"
}

func (r *Renderer) renderField(field types.Field) string {
	quotedName := r.quoteIdentifier(field.Name)
	if field.Table != "" {
		return fmt.Sprintf("%s.%s", field.Table, quotedName)
	}
	return quotedName
}

// Capabilities returns the features supported by MySQL/MariaDB.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ConcatFunction:        true,
		DistinctAggregate:     true,
		DistinctWithDelimiter: true,
		TextCast:              false,
	}
}
