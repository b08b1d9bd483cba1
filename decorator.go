package accounts

import (
	"context"
	"fmt"
)

// LogControllerDecorator wraps any Controller and records the stack of
// server-error outcomes before handing the envelope back untouched. A
// failing audit sink never masks the wrapped response.
type LogControllerDecorator struct {
	controller Controller
	audit      AuditLog
	logger     Logger
}

func NewLogControllerDecorator(controller Controller, audit AuditLog) *LogControllerDecorator {
	return &LogControllerDecorator{
		controller: controller,
		audit:      audit,
		logger:     defLogger{},
	}
}

func (d *LogControllerDecorator) WithLogger(logger Logger) *LogControllerDecorator {
	d.logger = logger
	return d
}

var _ Controller = (*LogControllerDecorator)(nil)

func (d *LogControllerDecorator) Handle(ctx context.Context, req Request) Response {
	res := d.controller.Handle(ctx, req)

	if res.StatusCode >= 500 && res.Cause != nil {
		stack := res.Stack
		if stack == "" {
			stack = res.Cause.Error()
		} else {
			stack = fmt.Sprintf("%s\n%s", res.Cause.Error(), stack)
		}

		if err := d.audit.Record(ctx, stack); err != nil {
			d.logger.Warn("audit log record error", "error", err)
		}
	}

	return res
}
