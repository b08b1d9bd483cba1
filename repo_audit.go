package accounts

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AuditLogs persists server error traces for the logging decorator.
type AuditLogs interface {
	repository.Repository[*AuditLogEntry]

	Record(ctx context.Context, stack string) error
	RecordTx(ctx context.Context, tx bun.IDB, stack string) error
}

type auditLogsRepo struct {
	repository.Repository[*AuditLogEntry]
	db *bun.DB
}

var (
	_ AuditLogs = (*auditLogsRepo)(nil)
	_ AuditLog  = (*auditLogsRepo)(nil)
)

func NewAuditLogsRepository(db *bun.DB) AuditLogs {
	repo := repository.NewRepository[*AuditLogEntry](db, repository.ModelHandlers[*AuditLogEntry]{
		NewRecord: func() *AuditLogEntry { return &AuditLogEntry{} },
		GetID: func(e *AuditLogEntry) uuid.UUID {
			if e == nil {
				return uuid.Nil
			}
			return e.ID
		},
		SetID: func(e *AuditLogEntry, id uuid.UUID) {
			if e != nil {
				e.ID = id
			}
		},
	})

	return &auditLogsRepo{
		Repository: repo,
		db:         db,
	}
}

func (a *auditLogsRepo) Record(ctx context.Context, stack string) error {
	return a.RecordTx(ctx, a.db, stack)
}

func (a *auditLogsRepo) RecordTx(ctx context.Context, tx bun.IDB, stack string) error {
	entry := &AuditLogEntry{
		ID:    uuid.New(),
		Stack: stack,
	}

	_, err := a.Repository.CreateTx(ctx, tx, entry)
	return err
}
