package accounts

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AccountRole is the account's role
type AccountRole = string

const (
	// RoleAdmin satisfies every role requirement
	RoleAdmin AccountRole = "admin"
	// RoleEditor can manage content but not accounts
	RoleEditor AccountRole = "editor"
	// RoleMember is the default role for self-registered accounts
	RoleMember AccountRole = "member"
)

// ValidRole checks the role is one of the predefined roles. The empty
// string is valid and means no elevated privileges.
func ValidRole(role AccountRole) bool {
	switch role {
	case "", RoleAdmin, RoleEditor, RoleMember:
		return true
	default:
		return false
	}
}

// Account is the identity record. The email column carries a unique index;
// registration relies on it to close the lookup-then-insert race between
// concurrent signups for the same address.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:acc"`
	ID            uuid.UUID   `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string      `bun:"name,notnull" json:"name,omitempty"`
	Email         string      `bun:"email,notnull,unique" json:"email,omitempty"`
	Phone         string      `bun:"phone_number" json:"phone_number,omitempty"`
	PasswordHash  string      `bun:"password_hash,notnull" json:"-"`
	AccessToken   string      `bun:"access_token" json:"-"`
	Role          AccountRole `bun:"role" json:"role,omitempty"`
	CreatedAt     *time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// AuditLogEntry is a persisted server error trace, written by the logging
// decorator whenever a controller resolves to a 500 envelope.
type AuditLogEntry struct {
	bun.BaseModel `bun:"table:audit_logs,alias:alog"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Stack         string     `bun:"stack,notnull" json:"stack,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}
