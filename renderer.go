package tagql

import "github.com/tagforge/tagql/internal/types"

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations convert an expression to a Fragment with dialect-specific
// SQL and named parameters.
type Renderer interface {
	// Render converts an expression to a Fragment with dialect-specific SQL.
	Render(expr types.Expression) (*types.Fragment, error)
}
