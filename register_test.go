package accounts_test

import (
	"context"
	"testing"

	accounts "github.com/goliatone/go-accounts"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeRegisterRequest() accounts.RegisterRequest {
	return accounts.RegisterRequest{
		Name:     "A Person",
		Email:    "a@x.com",
		Password: "super secret",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a duplicate email without hashing", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		store.On("GetByEmail", ctx, "a@x.com").Return(makeAccount(), nil).Once()

		sut := accounts.NewRegistrar(store, hasher)

		account, err := sut.Register(ctx, makeRegisterRequest())

		assert.Nil(t, account)
		assert.ErrorIs(t, err, accounts.ErrEmailInUse)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("creates the account with the hashed password", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		store.On("GetByEmail", ctx, "a@x.com").
			Return(nil, repository.NewRecordNotFound()).Once()
		hasher.On("Hash", "super secret").Return("digest", nil).Once()

		created := &accounts.Account{
			ID:           uuid.New(),
			Name:         "A Person",
			Email:        "a@x.com",
			PasswordHash: "digest",
			Role:         accounts.RoleMember,
		}
		store.On("CreateAccount", ctx, mock.MatchedBy(func(a *accounts.Account) bool {
			return a.Email == "a@x.com" && a.PasswordHash == "digest" && a.Role == accounts.RoleMember
		})).Return(created, nil).Once()

		sut := accounts.NewRegistrar(store, hasher)

		account, err := sut.Register(ctx, makeRegisterRequest())

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, created.ID, account.ID)
		store.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("maps a losing insert race to the duplicate outcome", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		store.On("GetByEmail", ctx, "a@x.com").
			Return(nil, repository.NewRecordNotFound()).Once()
		hasher.On("Hash", "super secret").Return("digest", nil).Once()
		store.On("CreateAccount", ctx, mock.Anything).
			Return(nil, accounts.ErrEmailInUse).Once()

		sut := accounts.NewRegistrar(store, hasher)

		account, err := sut.Register(ctx, makeRegisterRequest())

		assert.Nil(t, account)
		assert.ErrorIs(t, err, accounts.ErrEmailInUse)
	})

	t.Run("propagates a uniqueness lookup failure", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		store.On("GetByEmail", ctx, "a@x.com").
			Return(nil, errors.New("store unreachable", errors.CategoryInternal)).Once()

		sut := accounts.NewRegistrar(store, hasher)

		_, err := sut.Register(ctx, makeRegisterRequest())

		require.Error(t, err)
		assert.NotErrorIs(t, err, accounts.ErrEmailInUse)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("propagates a hashing failure", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		store.On("GetByEmail", ctx, "a@x.com").
			Return(nil, repository.NewRecordNotFound()).Once()
		hasher.On("Hash", "super secret").
			Return("", errors.New("hasher malfunction", errors.CategoryInternal)).Once()

		sut := accounts.NewRegistrar(store, hasher)

		_, err := sut.Register(ctx, makeRegisterRequest())

		require.Error(t, err)
		store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("derives a deterministic id when hashid is enabled", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		store.On("GetByEmail", ctx, "a@x.com").
			Return(nil, repository.NewRecordNotFound()).Twice()
		hasher.On("Hash", "super secret").Return("digest", nil).Twice()

		var first, second uuid.UUID
		store.On("CreateAccount", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				record := args.Get(1).(*accounts.Account)
				if first == uuid.Nil {
					first = record.ID
				} else {
					second = record.ID
				}
			}).
			Return(makeAccount(), nil).Twice()

		sut := accounts.NewRegistrar(store, hasher).WithHashID(true)

		_, err := sut.Register(ctx, makeRegisterRequest())
		require.NoError(t, err)
		_, err = sut.Register(ctx, makeRegisterRequest())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, first)
		assert.Equal(t, first, second)
	})

	t.Run("honors a cancelled context", func(t *testing.T) {
		store := new(MockAccountStore)
		hasher := new(MockHasher)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		sut := accounts.NewRegistrar(store, hasher)

		_, err := sut.Register(cancelled, makeRegisterRequest())

		require.Error(t, err)
		store.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}
