package accounts

import (
	"context"

	"github.com/goliatone/go-errors"
)

// AccountIDBody is the minimal payload an authorized request yields; the
// transport adapter merges it into the downstream request.
type AccountIDBody struct {
	AccountID string `json:"accountId"`
}

// AuthMiddleware is the controller-shaped authorization gate. It resolves
// the bearer token from the x-access-token header against the account
// store, optionally demanding a role. Admin accounts pass any requirement.
type AuthMiddleware struct {
	store AccountStore
	role  AccountRole
}

func NewAuthMiddleware(store AccountStore, role AccountRole) *AuthMiddleware {
	return &AuthMiddleware{store: store, role: role}
}

var _ Controller = (*AuthMiddleware)(nil)

func (m *AuthMiddleware) Handle(ctx context.Context, req Request) (res Response) {
	defer recoverTo500(&res)

	token := req.Header(HeaderAccessToken)
	if token == "" {
		return Forbidden(ErrAccessDenied)
	}

	account, err := m.store.GetByToken(ctx, token, m.role)
	if err != nil {
		if errors.IsNotFound(err) {
			return Forbidden(ErrAccessDenied)
		}
		return ServerError(err)
	}

	return OK(AccountIDBody{AccountID: account.ID.String()})
}
