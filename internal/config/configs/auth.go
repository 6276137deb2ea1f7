package configs

// Auth configures verification of the HS256 bearer tokens issued by the
// identity provider. Issuer and Audience are checked only when set.
type Auth struct {
	Secret   string `env:"SECRET"`
	Issuer   string `env:"ISSUER"`
	Audience string `env:"AUDIENCE"`
}
