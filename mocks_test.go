package accounts_test

import (
	"context"

	accounts "github.com/goliatone/go-accounts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountStore implements accounts.AccountStore
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	args := m.Called(ctx, email)
	var account *accounts.Account
	if v := args.Get(0); v != nil {
		account = v.(*accounts.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountStore) GetByToken(ctx context.Context, token, role string) (*accounts.Account, error) {
	args := m.Called(ctx, token, role)
	var account *accounts.Account
	if v := args.Get(0); v != nil {
		account = v.(*accounts.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountStore) CreateAccount(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	args := m.Called(ctx, account)
	var created *accounts.Account
	if v := args.Get(0); v != nil {
		created = v.(*accounts.Account)
	}
	return created, args.Error(1)
}

func (m *MockAccountStore) SetToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

// MockHasher implements accounts.Hasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(plaintext, digest string) (bool, error) {
	args := m.Called(plaintext, digest)
	return args.Bool(0), args.Error(1)
}

// MockTokenSigner implements accounts.TokenSigner
type MockTokenSigner struct {
	mock.Mock
}

func (m *MockTokenSigner) Sign(subjectID string) (string, error) {
	args := m.Called(subjectID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenSigner) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// MockAuditLog implements accounts.AuditLog
type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Record(ctx context.Context, stack string) error {
	args := m.Called(ctx, stack)
	return args.Error(0)
}

// MockValidation implements accounts.Validation
type MockValidation struct {
	mock.Mock
}

func (m *MockValidation) Validate(input map[string]any) error {
	args := m.Called(input)
	return args.Error(0)
}

// MockAuthentication implements accounts.Authentication
type MockAuthentication struct {
	mock.Mock
}

func (m *MockAuthentication) Authenticate(ctx context.Context, creds accounts.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

// MockRegistration implements accounts.Registration
type MockRegistration struct {
	mock.Mock
}

func (m *MockRegistration) Register(ctx context.Context, req accounts.RegisterRequest) (*accounts.Account, error) {
	args := m.Called(ctx, req)
	var account *accounts.Account
	if v := args.Get(0); v != nil {
		account = v.(*accounts.Account)
	}
	return account, args.Error(1)
}

// MockController implements accounts.Controller
type MockController struct {
	mock.Mock
}

func (m *MockController) Handle(ctx context.Context, req accounts.Request) accounts.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(accounts.Response)
}

// MockEmailChecker implements accounts.EmailFormatChecker
type MockEmailChecker struct {
	mock.Mock
}

func (m *MockEmailChecker) Valid(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}
