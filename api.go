// Package tagql provides dialect-aware SQL expression fragments for a
// tagging system: null-propagating string concatenation and delimited
// string aggregation, rendered identically in intent across PostgreSQL,
// MySQL/MariaDB, SQLite, and SQL Server.
//
// # Basic Usage
//
// Expressions are built with package-level constructors and rendered through
// a dialect renderer:
//
//	import "github.com/tagforge/tagql/postgres"
//
//	expr := tagql.StringAgg(tagql.F("value"), tagql.Delimiter(";"))
//	frag, err := postgres.New().Render(expr)
//	// frag.SQL: STRING_AGG(("value")::TEXT, ';')
//	// frag.RequiredParams: []string{}
//
// The fragment is included in a larger query by the host query builder;
// parameter values are supplied out-of-band under the names listed in
// RequiredParams (`:name` placeholders, sqlx style).
//
// # Dialect Resolution
//
// The dialect is chosen once, when a concrete renderer is constructed.
// RendererFor maps a backend identifier (as reported by a connection
// descriptor) to a renderer; expressions never inspect ambient connection
// state.
//
//	r := tagql.RendererFor(tagql.VendorPostgres)
//	frag, err := r.Render(tagql.ConcatNull(tagql.F("value"), tagql.F("lang")))
//
// # Delimiter Contract
//
// The aggregation delimiter is inlined into the SQL text as an escaped
// string literal on every dialect; it is never bound as a parameter. It must
// be a trusted literal, never untrusted input. See StringAgg.
//
// # Schema-Validated Usage
//
// For schema safety, create a TagQL instance from a DBML project:
//
//	instance, err := tagql.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the field/table doesn't exist in the schema
//	tags := instance.T("tags")
//	value := instance.F("value")
package tagql

import "github.com/tagforge/tagql/internal/types"

// Expression represents a renderable SQL value: a column reference, a bound
// parameter, or a nested expression.
// This is re-exported from internal/types for use by consumers.
type Expression = types.Expression

// Fragment contains the rendered SQL and required parameter names.
type Fragment = types.Fragment

// Field represents a column reference.
type Field = types.Field

// Param represents a named bound parameter.
type Param = types.Param

// ConcatExpression represents a null-propagating concatenation.
type ConcatExpression = types.ConcatExpression

// StringAggExpression represents a delimited string aggregation.
type StringAggExpression = types.StringAggExpression
