package accounts

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Authenticator orchestrates credential verification and token issuance.
type Authenticator struct {
	store  AccountStore
	hasher Hasher
	signer TokenSigner
	logger Logger
}

func NewAuthenticator(store AccountStore, hasher Hasher, signer TokenSigner) *Authenticator {
	return &Authenticator{
		store:  store,
		hasher: hasher,
		signer: signer,
		logger: defLogger{},
	}
}

func (a *Authenticator) WithLogger(logger Logger) *Authenticator {
	a.logger = logger
	return a
}

var _ Authentication = (*Authenticator)(nil)

// Authenticate resolves credentials to a fresh bearer token. Unknown email
// and wrong password collapse into the same empty result so responses never
// reveal which addresses are registered. The sequence is strict: no hash
// comparison without an account, no persistence without a signed token.
func (a *Authenticator) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	account, err := a.store.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", nil
		}
		a.logger.Error("Authenticate account lookup failed", "error", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve account during authentication")
	}

	match, err := a.hasher.Compare(creds.Password, account.PasswordHash)
	if err != nil {
		a.logger.Error("Authenticate hash comparison failed", "error", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to compare credentials")
	}

	if !match {
		return "", nil
	}

	token, err := a.signer.Sign(account.ID.String())
	if err != nil {
		a.logger.Error("Authenticate token signing failed", "error", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign access token")
	}

	if err := a.store.SetToken(ctx, account.ID, token); err != nil {
		a.logger.Error("Authenticate token persistence failed", "error", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to persist access token")
	}

	return token, nil
}
