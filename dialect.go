package tagql

import (
	"strings"

	"github.com/tagforge/tagql/generic"
	"github.com/tagforge/tagql/mssql"
	"github.com/tagforge/tagql/mysql"
	"github.com/tagforge/tagql/postgres"
	"github.com/tagforge/tagql/sqlite"
)

// Vendor identifies a database product, as reported by a connection
// descriptor.
type Vendor string

// Known vendor identifiers. RendererFor also accepts common driver spellings
// ("postgres", "pgx", "sqlite3", "sqlserver").
const (
	VendorPostgres Vendor = "postgresql"
	VendorMySQL    Vendor = "mysql"
	VendorMariaDB  Vendor = "mariadb"
	VendorSQLite   Vendor = "sqlite"
	VendorMSSQL    Vendor = "mssql"
)

// RendererFor resolves a backend identifier to a concrete dialect renderer.
// The resolution happens exactly once, here; the returned renderer never
// re-inspects connection state. Unknown vendors fall back to the generic
// renderer (CONCAT / GROUP_CONCAT syntax).
func RendererFor(vendor Vendor) Renderer {
	switch Vendor(strings.ToLower(strings.TrimSpace(string(vendor)))) {
	case VendorPostgres, "postgres", "pgx":
		return postgres.New()
	case VendorMySQL, VendorMariaDB:
		// MariaDB shares MySQL's aggregate and concatenation syntax.
		return mysql.New()
	case VendorSQLite, "sqlite3":
		return sqlite.New()
	case VendorMSSQL, "sqlserver":
		return mssql.New()
	default:
		return generic.New()
	}
}
