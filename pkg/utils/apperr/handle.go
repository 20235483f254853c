package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an unexpected error. Cancellation by the client is not an
// application error and is logged at debug level only.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Debug("request canceled", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
