package accounts

// AppConfig is an explicit configuration value satisfying Config. Build it
// once at process start and hand it to the adapter constructors; nothing in
// the pipeline reads ambient state.
type AppConfig struct {
	SigningKey      string   `json:"signing_key"`
	TokenExpiration int      `json:"token_expiration"`
	Issuer          string   `json:"issuer"`
	Audience        []string `json:"audience"`
	BcryptCost      int      `json:"bcrypt_cost"`
}

var _ Config = (*AppConfig)(nil)

func (c *AppConfig) GetSigningKey() string {
	return c.SigningKey
}

// GetTokenExpiration returns the token lifetime in hours.
func (c *AppConfig) GetTokenExpiration() int {
	if c.TokenExpiration <= 0 {
		return 24
	}
	return c.TokenExpiration
}

func (c *AppConfig) GetIssuer() string {
	return c.Issuer
}

func (c *AppConfig) GetAudience() []string {
	return c.Audience
}

func (c *AppConfig) GetBcryptCost() int {
	if c.BcryptCost <= 0 {
		return DefaultBcryptCost
	}
	return c.BcryptCost
}
