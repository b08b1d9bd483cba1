package accounts

import (
	"context"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var SetAccessTokenSQL = `UPDATE "accounts" AS "acc"
SET
	"access_token" = ?,
	"updated_at" = CURRENT_TIMESTAMP
WHERE (
	"acc"."id" = ?
) RETURNING *;`

// Accounts is the account repository. It extends the generic repository
// with the lookups the authentication pipeline needs.
type Accounts interface {
	repository.Repository[*Account]

	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*Account, error)
	GetByToken(ctx context.Context, token, role string) (*Account, error)
	GetByTokenTx(ctx context.Context, tx bun.IDB, token, role string) (*Account, error)
	CreateAccount(ctx context.Context, record *Account) (*Account, error)
	CreateAccountTx(ctx context.Context, tx bun.IDB, record *Account) (*Account, error)
	SetToken(ctx context.Context, id uuid.UUID, token string) error
	SetTokenTx(ctx context.Context, tx bun.IDB, id uuid.UUID, token string) error
}

type accountsRepo struct {
	repository.Repository[*Account]
	db *bun.DB
}

var (
	_ Accounts     = (*accountsRepo)(nil)
	_ AccountStore = (*accountsRepo)(nil)
)

func NewAccountsRepository(db *bun.DB) Accounts {
	repo := repository.NewRepository[*Account](db, repository.ModelHandlers[*Account]{
		NewRecord: func() *Account { return &Account{} },
		GetID: func(a *Account) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Account, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &accountsRepo{
		Repository: repo,
		db:         db,
	}
}

func (a *accountsRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return a.GetByEmailTx(ctx, a.db, email)
}

func (a *accountsRepo) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*Account, error) {
	record := &Account{}
	err := tx.NewSelect().Model(record).
		Where("?TableAlias.email = ?", strings.TrimSpace(email)).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"email": email,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *accountsRepo) GetByToken(ctx context.Context, token, role string) (*Account, error) {
	return a.GetByTokenTx(ctx, a.db, token, role)
}

// GetByTokenTx resolves the holder of token. A required role matches the
// stored role exactly, with admin passing every requirement.
func (a *accountsRepo) GetByTokenTx(ctx context.Context, tx bun.IDB, token, role string) (*Account, error) {
	record := &Account{}
	q := tx.NewSelect().Model(record).
		Where("?TableAlias.access_token = ?", token)

	if role != "" {
		q = q.Where("(?TableAlias.role = ? OR ?TableAlias.role = ?)", role, RoleAdmin)
	}

	if err := q.Limit(1).Scan(ctx); err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"role": role,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *accountsRepo) CreateAccount(ctx context.Context, record *Account) (*Account, error) {
	return a.CreateAccountTx(ctx, a.db, record)
}

func (a *accountsRepo) CreateAccountTx(ctx context.Context, tx bun.IDB, record *Account) (*Account, error) {
	prepareAccountDefaults(record)

	created, err := a.Repository.CreateTx(ctx, tx, record)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return created, nil
}

func (a *accountsRepo) SetToken(ctx context.Context, id uuid.UUID, token string) error {
	return a.SetTokenTx(ctx, a.db, id, token)
}

func (a *accountsRepo) SetTokenTx(ctx context.Context, tx bun.IDB, id uuid.UUID, token string) error {
	res, err := a.Repository.RawTx(ctx, tx, SetAccessTokenSQL, token, id.String())
	if err != nil {
		return err
	}

	if len(res) == 0 {
		return repository.NewRecordNotFound().
			WithMetadata(map[string]any{
				"id": id.String(),
			})
	}

	return nil
}

func prepareAccountDefaults(record *Account) {
	if record == nil {
		return
	}

	record.Email = strings.TrimSpace(record.Email)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}

// isUniqueViolation sniffs driver errors for the email unique index; the
// sqlite and postgres dialects spell it differently.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
