package accounts

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
)

// RegisterRequest is the signup payload handed to the Registrar. Phone is
// optional; validation rejects it only when present and malformed.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
	Password string `json:"password"`
}

// Registrar creates accounts. Duplicate emails are rejected up front; the
// unique index on accounts.email backstops the unavoidable race between the
// lookup and the insert.
type Registrar struct {
	store       AccountStore
	hasher      Hasher
	logger      Logger
	defaultRole AccountRole
	useHashID   bool
}

func NewRegistrar(store AccountStore, hasher Hasher) *Registrar {
	return &Registrar{
		store:       store,
		hasher:      hasher,
		logger:      defLogger{},
		defaultRole: RoleMember,
	}
}

func (r *Registrar) WithLogger(logger Logger) *Registrar {
	r.logger = logger
	return r
}

// WithDefaultRole sets the role stamped on self-registered accounts.
func (r *Registrar) WithDefaultRole(role AccountRole) *Registrar {
	r.defaultRole = role
	return r
}

// WithHashID derives account ids deterministically from the email instead
// of minting random UUIDs.
func (r *Registrar) WithHashID(enabled bool) *Registrar {
	r.useHashID = enabled
	return r
}

var _ Registration = (*Registrar)(nil)

func (r *Registrar) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), errors.CategoryOperation, "context cancelled during registration")
	default:
	}

	if _, err := r.store.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.IsNotFound(err) {
		r.logger.Error("Register uniqueness lookup failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to check email uniqueness")
	}

	hash, err := r.hasher.Hash(req.Password)
	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) && richErr.Category == errors.CategoryValidation {
			return nil, errors.Wrap(richErr, errors.CategoryValidation, "invalid password provided")
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	account := &Account{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         r.defaultRole,
	}

	if r.useHashID {
		if id, err := hashid.NewUUID(req.Email); err == nil {
			account.ID = id
		}
	}

	created, err := r.store.CreateAccount(ctx, account)
	if err != nil {
		// a concurrent signup can win the insert after our lookup passed
		var richErr *errors.Error
		if errors.As(err, &richErr) && richErr.Category == errors.CategoryConflict {
			return nil, ErrEmailInUse
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not create account")
	}

	return created, nil
}
