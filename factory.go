package accounts

// Factories wiring the pipeline the way the service binary consumes it:
// every controller leaves here validated, decorated, and bound to the
// shared repositories.

func MakeLoginValidation() Validation {
	return NewValidationComposite(
		NewRequiredFieldValidation("email"),
		NewRequiredFieldValidation("password"),
		NewEmailValidation("email", NewOzzoEmailChecker()),
	)
}

func MakeSignUpValidation() Validation {
	return NewValidationComposite(
		NewRequiredFieldValidation("name"),
		NewRequiredFieldValidation("email"),
		NewRequiredFieldValidation("password"),
		NewRequiredFieldValidation("passwordConfirmation"),
		NewCompareFieldsValidation("password", "passwordConfirmation"),
		NewEmailValidation("email", NewOzzoEmailChecker()),
		NewPhoneValidation("phone_number", NewLibPhoneChecker("")),
	)
}

func MakeAuthenticator(cfg Config, repo RepositoryManager) *Authenticator {
	hasher := NewBcryptHasher(cfg.GetBcryptCost())
	signer := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		cfg.GetAudience(),
		nil,
	)
	return NewAuthenticator(repo.Accounts(), hasher, signer)
}

func MakeLoginController(cfg Config, repo RepositoryManager) Controller {
	controller := NewLoginController(MakeLoginValidation(), MakeAuthenticator(cfg, repo))
	return NewLogControllerDecorator(controller, repo.AuditLogs())
}

func MakeSignUpController(cfg Config, repo RepositoryManager) Controller {
	registrar := NewRegistrar(repo.Accounts(), NewBcryptHasher(cfg.GetBcryptCost()))
	controller := NewSignUpController(
		MakeSignUpValidation(),
		registrar,
		MakeAuthenticator(cfg, repo),
	)
	return NewLogControllerDecorator(controller, repo.AuditLogs())
}

// MakeAuthMiddleware gates a route behind a bearer token; pass an empty
// role to accept any authenticated account.
func MakeAuthMiddleware(repo RepositoryManager, role AccountRole) Controller {
	return NewAuthMiddleware(repo.Accounts(), role)
}
