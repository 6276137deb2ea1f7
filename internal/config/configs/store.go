package configs

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store selects the persistence adapter.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// SQLite configures the embedded store. Migrations always run on open.
type SQLite struct {
	Path string `env:"PATH" envDefault:"agency-ops.db"`
}
