package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// HandleError reports an error that ended a run to Sentry and logs it with the Sentry event ID.
func HandleError(ctx context.Context, msg string, err error) {
	runID, _ := logging.CtxRunID(ctx)

	// Sending error to Sentry
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", runID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"run_id", runID,
		"sentry.EventID", evID,
	)
}

type reportedError struct {
	err error
}

func (x *reportedError) Error() string { return x.err.Error() }
func (x *reportedError) Unwrap() error { return x.err }

// Reported marks err as already sent to Sentry and logged by HandleError. The top level uses IsReported to avoid logging it again.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported returns true if err or any error it wraps was marked by Reported
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
