package apperr

import (
	"context"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// Handle logs a terminal query error with its taxonomy code. Errors are
// never retried; this is the single reporting point.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error",
		"code", model.CodeOf(err),
		"error", err,
	)
}
