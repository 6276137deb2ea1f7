package configs

// Ledger holds invoicing defaults.
type Ledger struct {
	// DefaultDueDays is the payment term of provisioned campaign invoices.
	DefaultDueDays int `env:"DEFAULT_DUE_DAYS" envDefault:"30"`
	// WriteRetries bounds how often a write that lost a serialization or
	// numbering race is retried before failing with CONCURRENT_UPDATE.
	WriteRetries int `env:"WRITE_RETRIES" envDefault:"3"`
	// SeedDemo inserts demo directory data on startup outside prod.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}
