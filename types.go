package accounts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Credentials is the transient login payload. The plaintext password lives
// only for the span of a single request and must never be logged or stored.
type Credentials struct {
	Email    string
	Password string
}

// Hasher hashes plaintext secrets and compares plaintext against a digest.
type Hasher interface {
	Hash(plaintext string) (string, error)
	// Compare reports whether plaintext matches digest. A false result is
	// not an error; errors are reserved for adapter malfunction.
	Compare(plaintext, digest string) (bool, error)
}

// TokenSigner issues and verifies opaque bearer tokens for a subject id.
type TokenSigner interface {
	Sign(subjectID string) (string, error)
	Verify(token string) (string, error)
}

// AccountStore is the persistence gateway consumed by the pipeline.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// GetByToken resolves the account holding token. When role is not empty
	// an account matches only if its stored role equals role or is RoleAdmin.
	GetByToken(ctx context.Context, token, role string) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) (*Account, error)
	SetToken(ctx context.Context, id uuid.UUID, token string) error
}

// AuditLog records server error traces. Implementations run best-effort;
// callers ignore their failures.
type AuditLog interface {
	Record(ctx context.Context, stack string) error
}

// Authentication verifies credentials and yields a bearer token. An empty
// token with a nil error means the credentials did not match; callers must
// not learn whether the email or the password was at fault.
type Authentication interface {
	Authenticate(ctx context.Context, creds Credentials) (string, error)
}

// Registration creates a new account from a signup request.
type Registration interface {
	Register(ctx context.Context, req RegisterRequest) (*Account, error)
}

// Config holds pipeline options
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetIssuer() string
	GetAudience() []string
	GetBcryptCost() int
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] ACCOUNTS "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] ACCOUNTS "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] ACCOUNTS "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] ACCOUNTS "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
