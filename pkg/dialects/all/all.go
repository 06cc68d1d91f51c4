// Package all registers every built-in dialect. Import it for side
// effects:
//
//	import _ "github.com/leapstack-labs/sqldialect/pkg/dialects/all"
package all

import (
	// Registered via init.
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/generic"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/sqlite"
)
