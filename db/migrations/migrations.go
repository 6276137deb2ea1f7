package migrations

import "embed"

// Postgres embeds the PostgreSQL schema. The golang-migrate iofs source
// reads it from PostgresDir.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite embeds the SQLite schema, read from SQLiteDir.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

// Version is the schema version both stores are migrated to.
const Version = 3
